package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/squad-arcade/internal/backdrop"
	"github.com/vovakirdan/squad-arcade/internal/core"
	"github.com/vovakirdan/squad-arcade/internal/registry"
	"github.com/vovakirdan/squad-arcade/internal/storage"
)

// menuTickRate is the backdrop animation rate.
const menuTickRate = 30

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // High score, 0 when none
	Record int // Best wave or distance, 0 when none
}

// recordLabel describes a game's progress record for the menu.
func (it MenuItem) recordLabel() string {
	switch {
	case it.Best == 0 && it.Record == 0:
		return ""
	case it.GameID == "squad":
		return fmt.Sprintf("best %d · wave %d", it.Best, it.Record)
	case it.GameID == "ski":
		return fmt.Sprintf("best %d · %dm", it.Best, it.Record)
	default:
		return fmt.Sprintf("best %d", it.Best)
	}
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	scene          *backdrop.Backdrop
	screen         *core.Screen
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			//nolint:errcheck // Missing records show as blank
			item.Best, _ = store.HighScore(g.ID)
			//nolint:errcheck // Missing records show as blank
			item.Record, _ = store.BestProgress(g.ID)
		}
		items = append(items, item)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		scene:     backdrop.New(seed),
		screen:    core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-menuFooterRows, 1)),
	}
}

// Init starts the backdrop animation.
func (m MenuModel) Init() tea.Cmd {
	return menuTickCmd()
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
		m.screen.Resize(max(msg.Width, 1), max(msg.Height-menuFooterRows, 1))
		return m, nil

	case menuTickMsg:
		if m.quitting || m.selected != nil || m.openScoreboard {
			return m, nil
		}
		m.scene.Update()
		return m, menuTickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
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
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

const menuFooterRows = 1

var menuHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the menu over the animated backdrop.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.scene.Render(m.screen)

	rows := m.screen.Height()
	top := max((rows-len(m.items)*2-4)/2, 0)

	drawCentered(m.screen, top, "  S Q U A D   A R C A D E  ", core.ColorBrightYellow)
	drawCentered(m.screen, top+2, "Select a game", core.ColorGray)

	for i, item := range m.items {
		y := top + 4 + i*2
		line := "  " + item.Title + "  "
		color := core.ColorWhite
		if i == m.cursor {
			line = "> " + item.Title + " <"
			color = core.ColorBrightCyan
		}
		drawCentered(m.screen, y, line, color)
		if label := item.recordLabel(); label != "" {
			drawCentered(m.screen, y+1, label, core.ColorGray)
		}
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))

	return b.String()
}

// drawCentered writes text centered on row y.
func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
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

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

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

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
