package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// Agent is the movable body shared by the player and the adversaries:
// a Size x Size box whose top-left corner sits at pixel (X, Y).
type Agent struct {
	X, Y  int
	Dir   Direction
	Size  int
	Speed int
}

// next returns the position one step away in direction d.
func (a *Agent) next(d Direction) (int, int) {
	dx, dy := d.Delta()
	return a.X + dx*a.Speed, a.Y + dy*a.Speed
}

func (a *Agent) canMove(t Terrain, d Direction) bool {
	x, y := a.next(d)
	return t.CanOccupy(x, y, a.Size)
}

// tryMove steps in direction d if the terrain allows it and commits d as
// the current heading.
func (a *Agent) tryMove(t Terrain, d Direction) bool {
	x, y := a.next(d)
	if !t.CanOccupy(x, y, a.Size) {
		return false
	}
	a.X, a.Y, a.Dir = x, y, d
	return true
}

// Bounds returns the agent's bounding box.
func (a *Agent) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Size, a.Size)
}

// Center returns the centre pixel of the bounding box.
func (a *Agent) Center() (int, int) {
	return a.X + a.Size/2, a.Y + a.Size/2
}
