package chase

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// playerGlyphs point the player's mouth along its heading.
var playerGlyphs = map[maze.Direction][2]rune{
	maze.Right: {'O', '>'},
	maze.Left:  {'<', 'O'},
	maze.Up:    {'O', '^'},
	maze.Down:  {'O', 'v'},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	offX, offY := g.boardOrigin(dst)
	g.renderGrid(dst, offX, offY)
	for _, adv := range g.arena.Adversaries() {
		g.renderAgent(dst, offX, offY, &adv.Agent, [2]rune{'M', 'M'}, adv.Color())
	}
	p := g.arena.Player()
	g.renderAgent(dst, offX, offY, &p.Agent, playerGlyphs[p.Dir], core.ColorBrightYellow)

	switch g.arena.State() {
	case maze.StateWon:
		g.renderOverlay(dst, "LEVEL COMPLETE!", fmt.Sprintf("Next: level %d", g.arena.Level()+1), core.ColorGreen)
	case maze.StateLost:
		g.renderOverlay(dst, "GAME OVER!", "Press R to restart", core.ColorRed)
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue", core.ColorYellow)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maze Chase | Score: %d | Level: %d | Pickups: %d/%d",
		g.arena.Score(), g.arena.Level(), g.arena.Eaten(), g.arena.TotalPickups())
	dst.DrawTextWithColor(0, 0, hud, core.ColorYellow)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// boardOrigin centres the board horizontally below the HUD.
func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	w := g.arena.Grid().Width() * cellWidth
	return max((dst.Width()-w)/2, 0), hudHeight
}

func (g *Game) renderGrid(dst *core.Screen, offX, offY int) {
	grid := g.arena.Grid()
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			x, y := offX+col*cellWidth, offY+row
			switch grid.Classify(col, row) {
			case maze.TileWall:
				dst.SetWithColor(x, y, '█', core.ColorBlue)
				dst.SetWithColor(x+1, y, '█', core.ColorBlue)
			case maze.TilePickup:
				dst.SetWithColor(x, y, '·', core.ColorWhite)
			}
		}
	}
}

// renderAgent draws a two-column sprite at the agent's nearest half tile.
// Agents inside the tunnel overhang are clipped to the board.
func (g *Game) renderAgent(dst *core.Screen, offX, offY int, a *maze.Agent, glyph [2]rune, c core.Color) {
	grid := g.arena.Grid()
	ts := grid.TileSize()

	half := floorDiv(a.X*cellWidth+ts/2, ts)
	row := floorDiv(a.Y+ts/2, ts)
	if row < 0 || row >= grid.Height() {
		return
	}
	for i, r := range glyph {
		hx := half + i
		if hx < 0 || hx >= grid.Width()*cellWidth {
			continue
		}
		dst.SetWithColor(offX+hx, offY+row, r, c)
	}
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	n := max(len([]rune(line1)), len([]rune(line2)))
	boxW, boxH := n+4, 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
