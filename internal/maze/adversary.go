package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/core"
)

const (
	// cruiseRedirectOdds is the 1-in-N chance of turning while the way
	// ahead is still free.
	cruiseRedirectOdds = 50
	// redirectAttempts bounds the random search for a free heading.
	redirectAttempts = 10
)

// MoveKind records which policy drove an adversary's last tick.
type MoveKind uint8

const (
	MoveNone MoveKind = iota
	MoveWander
	MovePursuit
	// MovePursuitBlocked means the chase roll succeeded but every
	// candidate was walled off, so the adversary wandered instead.
	MovePursuitBlocked
)

func (k MoveKind) String() string {
	switch k {
	case MoveWander:
		return "wander"
	case MovePursuit:
		return "pursuit"
	case MovePursuitBlocked:
		return "pursuit-blocked"
	default:
		return "none"
	}
}

// ChaseThreshold returns the percentage chance that an adversary of the
// given tier chases its target on a tick. Tiers above 3 saturate at 60.
func ChaseThreshold(tier int) int {
	switch {
	case tier <= 1:
		return 10
	case tier == 2:
		return 30
	default:
		return min(60+(tier-3)*10, 60)
	}
}

// Adversary is a computer-controlled agent that mixes random wandering
// with pursuit of a target. Its tier sets how often it pursues.
type Adversary struct {
	Agent
	tier     int
	color    core.Color
	rng      *rand.Rand
	lastMove MoveKind
}

// NewAdversary places an adversary at (x, y). Tiers below 1 are raised
// to 1. The heading is drawn from rng.
func NewAdversary(x, y, size, speed, tier int, color core.Color, rng *rand.Rand) *Adversary {
	return &Adversary{
		Agent: Agent{X: x, Y: y, Dir: Directions[rng.Intn(len(Directions))], Size: size, Speed: speed},
		tier:  max(tier, 1),
		color: color,
		rng:   rng,
	}
}

// Tier returns the pursuit tier.
func (a *Adversary) Tier() int { return a.tier }

// Color returns the colour tag used by renderers.
func (a *Adversary) Color() core.Color { return a.color }

// LastMove reports which policy moved the adversary on its last tick.
func (a *Adversary) LastMove() MoveKind { return a.lastMove }

// Move advances one tick against terrain t, possibly chasing target.
func (a *Adversary) Move(t Terrain, target *Agent) {
	switch {
	case a.rng.Intn(100) >= ChaseThreshold(a.tier):
		a.wander(t)
		a.lastMove = MoveWander
	case a.pursue(t, target):
		a.lastMove = MovePursuit
	default:
		a.wander(t)
		a.lastMove = MovePursuitBlocked
	}
	a.X = t.WrapX(a.X)
}

// pursuitCandidates returns the headings to try, primary axis first.
// Only tier 3 and above get the secondary axis.
func (a *Adversary) pursuitCandidates(target *Agent) []Direction {
	dx, dy := target.X-a.X, target.Y-a.Y

	horiz := Left
	if dx > 0 {
		horiz = Right
	}
	vert := Up
	if dy > 0 {
		vert = Down
	}

	primary, secondary := vert, horiz
	if core.Abs(dx) > core.Abs(dy) {
		primary, secondary = horiz, vert
	}

	if a.tier >= 3 {
		return []Direction{primary, secondary}
	}
	return []Direction{primary}
}

func (a *Adversary) pursue(t Terrain, target *Agent) bool {
	if target == nil {
		return false
	}
	for _, d := range a.pursuitCandidates(target) {
		if a.tryMove(t, d) {
			return true
		}
	}
	return false
}

func (a *Adversary) wander(t Terrain) {
	if !a.tryMove(t, a.Dir) {
		a.redirect(t)
		return
	}
	if a.rng.Intn(cruiseRedirectOdds) == 0 {
		a.redirect(t)
	}
}

// redirect picks a random free heading, keeping the current one when none
// of the attempts is free. It does not move the agent.
func (a *Adversary) redirect(t Terrain) {
	for i := 0; i < redirectAttempts; i++ {
		d := Directions[a.rng.Intn(len(Directions))]
		if a.canMove(t, d) {
			a.Dir = d
			return
		}
	}
}
