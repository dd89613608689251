package maze

// Player is the user-controlled agent. It remembers the most recent
// direction request and takes it the first tick the maze allows.
type Player struct {
	Agent
	requested Direction
	score     int
	wraps     bool
}

// NewPlayer places a player at (x, y) heading in dir.
func NewPlayer(x, y, size, speed int, dir Direction, wraps bool) *Player {
	return &Player{
		Agent:     Agent{X: x, Y: y, Dir: dir, Size: size, Speed: speed},
		requested: dir,
		wraps:     wraps,
	}
}

// RequestDirection overwrites the pending request. It is never validated.
func (p *Player) RequestDirection(d Direction) {
	p.requested = d
}

// Requested returns the pending direction request.
func (p *Player) Requested() Direction {
	return p.requested
}

// Move advances one tick: the requested direction if it is free, else the
// current heading, else nothing.
func (p *Player) Move(t Terrain) {
	if !p.tryMove(t, p.requested) {
		p.tryMove(t, p.Dir)
	}
	if p.wraps {
		p.X = t.WrapX(p.X)
	}
}

// AddScore adds a signed delta to the score.
func (p *Player) AddScore(delta int) {
	p.score += delta
}

// Score returns the accumulated score.
func (p *Player) Score() int {
	return p.score
}
