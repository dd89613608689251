package chase

import (
	"fmt"
	"hash/fnv"
)

// AgentSnapshot is the position and heading of one agent.
type AgentSnapshot struct {
	X, Y int
	Dir  string
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int // Current level (1-indexed)
	State       string
	Score       int
	Eaten       int
	Total       int
	Paused      bool
	Player      AgentSnapshot
	Adversaries []AgentSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.arena.Player()
	s := Snapshot{
		Tick:   g.tick,
		Level:  g.arena.Level(),
		State:  g.arena.State().String(),
		Score:  g.arena.Score(),
		Eaten:  g.arena.Eaten(),
		Total:  g.arena.TotalPickups(),
		Paused: g.paused,
		Player: AgentSnapshot{X: p.X, Y: p.Y, Dir: p.Dir.String()},
	}
	for _, a := range g.arena.Adversaries() {
		s.Adversaries = append(s.Adversaries, AgentSnapshot{X: a.X, Y: a.Y, Dir: a.Dir.String()})
	}
	return s
}

// Hash folds the snapshot into a single value for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%d;L:%d;S:%s;P:%d:%d:%d;", s.Tick, s.Level, s.State, s.Score, s.Eaten, s.Total)
	fmt.Fprintf(h, "U:%d:%d:%s;", s.Player.X, s.Player.Y, s.Player.Dir)
	for _, a := range s.Adversaries {
		fmt.Fprintf(h, "A:%d:%d:%s,", a.X, a.Y, a.Dir)
	}
	fmt.Fprintf(h, ";Z:%v", s.Paused)
	return h.Sum64()
}
