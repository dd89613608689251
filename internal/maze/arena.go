// Package maze implements the maze chase engine: a tile grid, the player
// and adversary agents that move through it, and the arena that runs one
// simulation tick at a time.
//
// The package has no notion of wall-clock time or terminals. A driver
// calls Scheduler.Advance and Arena.Advance once per tick and renders
// from the query methods.
package maze

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// State is the arena's lifecycle state.
type State uint8

const (
	StateLoading State = iota
	StateInProgress
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in-progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Settings holds the tunable constants of a game.
type Settings struct {
	TileSize     int
	Speed        int
	PickupReward int
	AdvanceDelay time.Duration
	WrapPlayer   bool
}

// DefaultSettings returns the classic values: 20px tiles, 2px per tick,
// 10 points per pickup and a two second pause between levels.
func DefaultSettings() Settings {
	return Settings{
		TileSize:     20,
		Speed:        2,
		PickupReward: 10,
		AdvanceDelay: 2 * time.Second,
		WrapPlayer:   true,
	}
}

// ErrNoTemplates is returned by NewArena when given no levels.
var ErrNoTemplates = errors.New("maze: no level templates")

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.log = l
		}
	}
}

// WithRand sets the random source shared by every adversary.
func WithRand(rng *rand.Rand) Option {
	return func(a *Arena) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithScheduler sets the scheduler that runs the delayed level advance.
func WithScheduler(s *Scheduler) Option {
	return func(a *Arena) {
		if s != nil {
			a.sched = s
		}
	}
}

// Arena owns one game session: the live grid, the agents and the level
// lifecycle. It is not safe for concurrent use; a single loop drives it.
type Arena struct {
	settings  Settings
	templates []*Template
	sched     *Scheduler
	rng       *rand.Rand
	log       *log.Logger

	level       int
	state       State
	grid        *Grid
	player      *Player
	adversaries []*Adversary
	total       int
	eaten       int
	pending     *Task
}

// NewArena creates an arena cycling through templates. No level is loaded
// until Reset or LoadLevel is called.
func NewArena(settings Settings, templates []*Template, opts ...Option) (*Arena, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	a := &Arena{
		settings:  settings,
		templates: append([]*Template(nil), templates...),
		sched:     NewScheduler(),
		rng:       rand.New(rand.NewSource(1)),
		log:       log.New(io.Discard),
		state:     StateLoading,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Reset starts a new game from level 1 with a zero score.
func (a *Arena) Reset() {
	a.player = nil
	a.LoadLevel(1)
}

// LoadLevel builds level n (1-based; levels cycle through the templates),
// respawns every agent and cancels any pending level advance. The score
// carries over from the current player.
func (a *Arena) LoadLevel(n int) {
	if a.pending.Cancel() {
		a.log.Debug("cancelled pending level advance", "level", a.level)
	}
	a.pending = nil
	a.state = StateLoading

	tpl := a.templates[core.Mod(n-1, len(a.templates))]
	ts, speed := a.settings.TileSize, a.settings.Speed

	score := 0
	if a.player != nil {
		score = a.player.Score()
	}

	a.level = n
	a.grid = tpl.NewGrid(ts)
	a.total = a.grid.CountPickups()
	a.eaten = 0

	a.player = NewPlayer(tpl.Player.Col*ts, tpl.Player.Row*ts, ts, speed, Left, a.settings.WrapPlayer)
	a.player.AddScore(score)

	a.adversaries = make([]*Adversary, 0, len(tpl.Adversaries))
	for _, sp := range tpl.Adversaries {
		a.adversaries = append(a.adversaries,
			NewAdversary(sp.Col*ts, sp.Row*ts, ts, speed, sp.Tier, sp.Color, a.rng))
	}

	a.state = StateInProgress
	a.log.Debug("level loaded", "level", n, "template", tpl.ID, "pickups", a.total)
}

// Advance runs one tick. It does nothing unless a level is in progress.
func (a *Arena) Advance() {
	if a.state != StateInProgress {
		return
	}

	a.player.Move(a.grid)
	for _, adv := range a.adversaries {
		adv.Move(a.grid, &a.player.Agent)
	}

	a.collectPickup()
	if a.checkCaught() {
		return
	}
	if a.eaten >= a.total {
		a.win()
	}
}

// collectPickup eats the pickup under the player's centre, if any.
func (a *Arena) collectPickup() {
	cx, cy := a.player.Center()
	ts := a.grid.TileSize()
	if cx < 0 || cy < 0 {
		return
	}
	if a.grid.ConsumePickup(cx/ts, cy/ts) {
		a.player.AddScore(a.settings.PickupReward)
		a.eaten++
	}
}

func (a *Arena) checkCaught() bool {
	pb := a.player.Bounds()
	for i, adv := range a.adversaries {
		if pb.Intersects(adv.Bounds()) {
			a.state = StateLost
			a.log.Debug("player caught", "level", a.level, "adversary", i, "score", a.player.Score())
			return true
		}
	}
	return false
}

func (a *Arena) win() {
	a.state = StateWon
	next := a.level + 1
	a.log.Debug("level complete", "level", a.level, "score", a.player.Score(), "next", next)
	a.pending = a.sched.AfterFunc(a.settings.AdvanceDelay, func() {
		a.pending = nil
		a.LoadLevel(next)
	})
}

// RequestDirection forwards a direction request to the player.
func (a *Arena) RequestDirection(d Direction) {
	if a.player != nil {
		a.player.RequestDirection(d)
	}
}

// Level returns the current 1-based level number.
func (a *Arena) Level() int { return a.level }

// State returns the lifecycle state.
func (a *Arena) State() State { return a.state }

// Grid returns the live grid of the current level.
func (a *Arena) Grid() *Grid { return a.grid }

// Player returns the player agent.
func (a *Arena) Player() *Player { return a.player }

// Adversaries returns the adversaries in spawn order.
func (a *Arena) Adversaries() []*Adversary { return a.adversaries }

// Template returns the template the current level was built from.
func (a *Arena) Template() *Template {
	return a.templates[core.Mod(max(a.level, 1)-1, len(a.templates))]
}

// TotalPickups returns the pickup count of the level at load time.
func (a *Arena) TotalPickups() int { return a.total }

// Eaten returns the number of pickups eaten on this level.
func (a *Arena) Eaten() int { return a.eaten }

// PickupsRemaining returns how many pickups are left on this level.
func (a *Arena) PickupsRemaining() int { return a.total - a.eaten }

// Score returns the player's score, or 0 before the first load.
func (a *Arena) Score() int {
	if a.player == nil {
		return 0
	}
	return a.player.Score()
}

// Scheduler returns the scheduler driving delayed transitions.
func (a *Arena) Scheduler() *Scheduler { return a.sched }

// IsWall reports whether the pixel (x, y) is a wall on the live grid.
func (a *Arena) IsWall(x, y int) bool { return a.grid.IsWall(x, y) }

// CanOccupy reports whether a size x size box fits at (x, y).
func (a *Arena) CanOccupy(x, y, size int) bool { return a.grid.CanOccupy(x, y, size) }

// WrapX applies the horizontal tunnel to x.
func (a *Arena) WrapX(x int) int { return a.grid.WrapX(x) }

// PixelWidth returns the board width in pixels.
func (a *Arena) PixelWidth() int { return a.grid.PixelWidth() }
