package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/squad-arcade/internal/core"
	"github.com/vovakirdan/squad-arcade/internal/registry"
	"github.com/vovakirdan/squad-arcade/internal/storage"
)

// Options carries the collaborators a game session may use.
// Every field is optional.
type Options struct {
	Store  *storage.Store
	Audio  core.CuePlayer
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// cueGate forwards cues unless muted.
type cueGate struct {
	player core.CuePlayer
	muted  bool
}

func (c *cueGate) Play(cue core.Cue, intensity float64) {
	if c.muted || c.player == nil {
		return
	}
	c.player.Play(cue, intensity)
}

// hudTracker receives HUD reports and logs wave transitions.
type hudTracker struct {
	gameID string
	logger *log.Logger
	last   core.HUD
}

func (h *hudTracker) Report(hud core.HUD) {
	if hud.Wave > h.last.Wave && h.last.Wave > 0 {
		h.logger.Info("wave reached", "game", h.gameID, "wave", hud.Wave, "score", hud.Score)
	}
	h.last = hud
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	holds      *holdTracker
	audio      *cueGate
	hud        *hudTracker
	gameState  core.GameState
	randomSeed bool // Reseed from the clock on restart
	autoFire   bool
	ticks      int64 // Simulation ticks played in the current run
	quitting   bool
	backToMenu bool
	quitOnExit bool // Leaving to the menu ends the program
	recorded   bool // Whether the current game over has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	randomSeed := cfg.Seed == 0
	if randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusRows, 1)),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		holds:      newHoldTracker(cfg.TickRate),
		audio:      &cueGate{player: opts.Audio},
		hud:        &hudTracker{gameID: game.ID(), logger: opts.logger()},
		gameState:  core.GameState{Speed: cfg.Speed},
		randomSeed: randomSeed,
		quitOnExit: true,
	}
	registry.Attach(game, m.hud, m.audio)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.logger().Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "speed", m.config.Speed)

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
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case m.keys.IsAutoFireToggle(msg):
		m.autoFire = !m.autoFire
		return m, nil
	case m.keys.IsMuteToggle(msg):
		m.audio.muted = !m.audio.muted
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	case core.ActionBack:
		// Back only leaves from the pause or game over screens; while
		// playing it pauses first.
		if !m.gameState.GameOver && !m.gameState.Paused {
			action = core.ActionPause
		}
	case core.ActionLeft:
		m.holds.Release(core.ActionRight)
	case core.ActionRight:
		m.holds.Release(core.ActionLeft)
	case core.ActionUp:
		m.holds.Release(core.ActionDown)
	case core.ActionDown:
		m.holds.Release(core.ActionUp)
	}

	m.inputFrame.Set(action)
	if Holdable(action) {
		m.holds.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// Games project their world onto whatever screen they are given, so the
// running game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-statusRows, 1))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.inputFrame
	m.holds.Apply(&frame)
	if m.autoFire {
		frame.Hold(core.ActionFire)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	if !m.gameState.Paused && !m.gameState.GameOver && !m.gameState.Exited {
		m.ticks++
	}

	if m.gameState.GameOver && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	m.inputFrame.Clear()

	if m.gameState.Exited {
		m.backToMenu = true
		m.holds.Clear()
		if m.quitOnExit {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run of the same game.
func (m *Model) restart() {
	if m.randomSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.config.Speed = m.gameState.Speed
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.ticks = 0
	m.recorded = false
	m.holds.Clear()
	m.inputFrame.Clear()
}

// recordRun logs a finished game and saves its score and run record.
// Storage failures are logged and otherwise ignored.
func (m *Model) recordRun() {
	logger := m.opts.logger()
	st := m.gameState
	logger.Info("game over",
		"game", m.game.ID(),
		"score", st.Score,
		"progress", st.Progress,
		"ticks", m.ticks,
	)

	if m.opts.Store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), st.Score); err != nil {
			logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}
	run := storage.RunEntry{
		GameID:   m.game.ID(),
		Score:    st.Score,
		Progress: st.Progress,
		Ticks:    m.ticks,
		Speed:    st.Speed,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("could not save screenshot", "path", path, "error", err)
	}
}

// statusRows is the number of terminal rows reserved below the game.
const statusRows = 1

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
	statusOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
)

// statusBar renders the platform toggles and key hints under the game.
func (m Model) statusBar() string {
	var tags []string
	tags = append(tags, statusOnStyle.Render(fmt.Sprintf(" x%g ", m.gameState.Speed)))
	if m.autoFire {
		tags = append(tags, statusOnStyle.Render(" AUTO-FIRE "))
	}
	if m.audio.muted {
		tags = append(tags, statusOnStyle.Render(" MUTED "))
	}

	hints := " [/] speed  f auto-fire  n mute  p pause  q quit"
	left := strings.Join(tags, " ")
	pad := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(hints)
	if pad < 0 {
		return left
	}
	return left + statusStyle.Render(strings.Repeat(" ", pad)+hints)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the game has torn itself down for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It returns once the player quits or leaves for the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	fm, ok := final.(Model)
	if !ok {
		return true, nil
	}
	return fm.IsQuitting(), nil
}
