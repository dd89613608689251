package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	ledger     *storage.Ledger
	log        *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      uint64 // Ticks in the current run
	recorded   bool   // Whether the current run is in the ledger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// ledger and logger may be nil.
func NewModel(game registry.Game, ledger *storage.Ledger, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		ledger:     ledger,
		log:        logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

func gameHeight(h int) int {
	return max(h-helpHeight, 1)
}

// gameConfig is the runtime config as seen by the game, minus the help row.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if quit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); quit {
		m.recordRun(storage.ReasonQuit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	// Games that can re-layout keep their state; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case wasOver && !m.gameState.GameOver:
		// Restarted.
		m.ticks = 0
		m.recorded = false
	case m.gameState.GameOver:
		m.recordRun(storage.ReasonCaught)
	default:
		if !m.gameState.Paused {
			m.ticks++
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the current run once.
func (m *Model) recordRun(reason storage.EndReason) {
	if m.recorded || m.ledger == nil {
		return
	}
	// A run quit before it started is not worth a row.
	if reason == storage.ReasonQuit && m.ticks == 0 {
		return
	}
	m.recorded = true

	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  max(m.gameState.Level, 1),
		Reason: reason,
		Ticks:  m.ticks,
	}
	if _, err := m.ledger.RecordRun(run); err != nil {
		m.log.Error("cannot record run", "err", err)
		return
	}
	m.log.Info("run recorded", "game", run.GameID, "score", run.Score, "level", run.Level, "reason", run.Reason, "ticks", run.Ticks)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, ledger *storage.Ledger, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, ledger, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
