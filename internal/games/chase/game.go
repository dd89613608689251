// Package chase adapts the maze engine to the platform: it turns input
// frames into direction requests, drives the arena once per tick and
// draws the board into a character screen.
package chase

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/maze/levels"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// GameID is the registry and run ledger key.
const GameID = "chase"

const (
	hudHeight = 2 // Score line + separator
	cellWidth = 2 // Terminal columns per tile
)

// Game implements Maze Chase.
type Game struct {
	cfg      config.MazeConfig
	rng      *rand.Rand
	sched    *maze.Scheduler
	arena    *maze.Arena
	interval time.Duration

	tick       uint64
	paused     bool
	tooSmall   bool
	startLevel int
	screenW    int
	screenH    int
	tickRate   int
	maxLevel   int
}

// Package-level settings, set by the CLI before the game is created.
var (
	configPath         string
	levelsDir          string
	selectedStartLevel int
	logger             *log.Logger
)

// SetConfigPath sets an explicit config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsDir loads level templates from dir instead of the bundled set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel sets the starting level (1-based). 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLogger routes engine lifecycle logs to l.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a game that starts at the currently selected level.
func New() *Game {
	return &Game{startLevel: max(selectedStartLevel, 1)}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Templates returns the level templates the game would play, honouring
// the configured levels directory.
func Templates() ([]*maze.Template, error) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		return nil, err
	}
	return levels.Load(resolveLevelsDir(cfg), logger)
}

func resolveLevelsDir(cfg config.MazeConfig) string {
	if levelsDir != "" {
		return levelsDir
	}
	return cfg.Levels.Dir
}

// LevelNames returns the names of the playable levels in order.
func LevelNames() []string {
	tpls, err := Templates()
	if err != nil {
		tpls = levels.Bundled()
	}
	names := make([]string, len(tpls))
	for i, t := range tpls {
		names[i] = t.Name
	}
	return names
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMaze(configPath)
	if err != nil {
		g.logger().Warn("using default config", "err", err)
		mc = config.DefaultMazeConfig()
	}
	g.cfg = mc

	tpls, err := levels.Load(resolveLevelsDir(mc), logger)
	if err != nil {
		g.logger().Warn("using bundled levels", "err", err)
		tpls = levels.Bundled()
	}

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = mc.Timing.TickRate
	}
	g.interval = time.Second / time.Duration(g.tickRate)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.sched = maze.NewScheduler()
	g.tick = 0
	g.paused = false
	g.maxLevel = 0

	// NewArena only fails without templates, and tpls is never empty here.
	g.arena, _ = maze.NewArena(settingsFrom(mc), tpls,
		maze.WithRand(g.rng),
		maze.WithScheduler(g.sched),
		maze.WithLogger(logger),
	)
	g.arena.Reset()
	if g.startLevel > 1 {
		g.arena.LoadLevel(g.startLevel)
	}
	g.maxLevel = g.arena.Level()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func settingsFrom(mc config.MazeConfig) maze.Settings {
	return maze.Settings{
		TileSize:     mc.Board.TileSize,
		Speed:        mc.Board.Speed,
		PickupReward: mc.Scoring.PickupReward,
		AdvanceDelay: mc.LevelAdvanceDelay(),
		WrapPlayer:   mc.Rules.WrapPlayer,
	}
}

func (g *Game) logger() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.Default()
}

// Resize records a new screen size. The run continues; a window too small
// for the board pauses the simulation until it grows again.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	grid := g.arena.Grid()
	g.tooSmall = w < grid.Width()*cellWidth || h < grid.Height()+hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.arena.State() == maze.StateLost {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && g.arena.State() != maze.StateLost {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Pending level transitions fire before the tick they fall due in.
	g.sched.Advance(g.interval)
	g.arena.Advance()
	g.maxLevel = max(g.maxLevel, g.arena.Level())

	return core.StepResult{State: g.State()}
}

// processInput forwards the first direction in the frame to the player.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.arena.RequestDirection(maze.Up)
	case input.Has(core.ActionDown):
		g.arena.RequestDirection(maze.Down)
	case input.Has(core.ActionLeft):
		g.arena.RequestDirection(maze.Left)
	case input.Has(core.ActionRight):
		g.arena.RequestDirection(maze.Right)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.arena.Score(),
		Level:    g.maxLevel,
		GameOver: g.arena.State() == maze.StateLost,
		Paused:   g.paused,
	}
}

// Arena exposes the engine for tests and debugging tools.
func (g *Game) Arena() *maze.Arena {
	return g.arena
}
