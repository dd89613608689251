package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one starting level in the picker.
type MenuItem struct {
	Level int // 1-based
	Title string
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	gameID         string
	items          []MenuItem
	cursor         int
	width          int
	height         int
	ledger         *storage.Ledger
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when the user picks a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a picker over the given level names. ledger may be
// nil; it is only used for the session summary line.
func NewMenuModel(gameID string, levelNames []string, ledger *storage.Ledger, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, len(levelNames))
	for i, name := range levelNames {
		items[i] = MenuItem{Level: i + 1, Title: name}
	}

	return MenuModel{
		gameID:    gameID,
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		ledger:    ledger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M A Z E   C H A S E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a starting level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %d. %s", item.Level, item.Title)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %d. %s", item.Level, item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if summary := m.sessionSummary(); summary != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(summary), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) sessionSummary() string {
	if m.ledger == nil {
		return ""
	}
	stats, err := m.ledger.Stats(m.gameID)
	if err != nil || stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("Runs this session: %d  |  Best: %d", stats.Runs, stats.BestScore)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured on the
// visible cells so styled strings center correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int // 1-based, 0 when nothing was picked
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Level = m.Selected().Level
	}
	return result
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(gameID string, levelNames []string, ledger *storage.Ledger, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(gameID, levelNames, ledger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
