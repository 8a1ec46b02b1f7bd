package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/squad-arcade/internal/core"
	"github.com/vovakirdan/squad-arcade/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	state    core.GameState
	frames   []core.InputFrame
	resets   int
	reporter core.Reporter
	audio    core.CuePlayer
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resets++
	f.state = core.GameState{Speed: cfg.SpeedOrDefault()}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.frames = append(f.frames, in.Clone())
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) {}

func (f *fakeGame) State() core.GameState { return f.state }

func (f *fakeGame) Attach(r core.Reporter, a core.CuePlayer) {
	f.reporter = r
	f.audio = a
}

func (f *fakeGame) lastFrame() core.InputFrame {
	return f.frames[len(f.frames)-1]
}

type countingPlayer struct{ plays int }

func (c *countingPlayer) Play(core.Cue, float64) { c.plays++ }

func newTestModel(g *fakeGame, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := NewModel(g, opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, Speed: 1})
	m.Init()
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHoldTrackerWindows(t *testing.T) {
	h := newHoldTracker(60)
	h.Press(core.ActionLeft)

	held := 0
	for i := 0; i < 100; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.IsHeld(core.ActionLeft) {
			break
		}
		held++
	}
	if held != 33 {
		t.Errorf("initial hold = %d ticks, expected 33", held)
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := newHoldTracker(60)
	h.Press(core.ActionFire)
	for i := 0; i < 32; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
	}
	h.Press(core.ActionFire)
	if got := h.remaining[core.ActionFire]; got != 9 {
		t.Errorf("remaining after repeat = %d, expected 9", got)
	}

	h.Release(core.ActionFire)
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionFire) {
		t.Error("released action should not be held")
	}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"m", runeKey("m"), core.ActionBack, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"speed up", runeKey("]"), core.ActionSpeedUp, false},
		{"speed down", runeKey("["), core.ActionSpeedDown, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestModelAttachesCollaborators(t *testing.T) {
	g := &fakeGame{}
	player := &countingPlayer{}
	m := newTestModel(g, Options{Audio: player})

	if g.reporter == nil || g.audio == nil {
		t.Fatal("model should attach a reporter and an audio player")
	}

	g.audio.Play(core.CueShoot, 1)
	m = send(m, runeKey("n"))
	g.audio.Play(core.CueShoot, 1)
	if player.plays != 1 {
		t.Errorf("plays = %d, expected 1 (second cue muted)", player.plays)
	}
}

func TestModelPressIsHeldAcrossTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(m, TickMsg{})
	if !g.lastFrame().Has(core.ActionLeft) {
		t.Error("first tick should carry the press")
	}

	m = send(m, TickMsg{})
	f := g.lastFrame()
	if f.Has(core.ActionLeft) {
		t.Error("second tick should not repeat the press")
	}
	if !f.IsHeld(core.ActionLeft) {
		t.Error("second tick should still hold left")
	}

	// Opposite direction cancels the hold.
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	send(m, TickMsg{})
	f = g.lastFrame()
	if f.IsHeld(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
}

func TestModelAutoFire(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = send(m, runeKey("f"))
	for i := 0; i < 3; i++ {
		m = send(m, TickMsg{})
		if !g.lastFrame().IsHeld(core.ActionFire) {
			t.Fatalf("tick %d: auto-fire should hold fire", i)
		}
	}

	m = send(m, runeKey("f"))
	send(m, TickMsg{})
	if g.lastFrame().IsHeld(core.ActionFire) {
		t.Error("auto-fire off should release fire")
	}
}

func TestModelBackPausesWhilePlaying(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = send(m, TickMsg{})
	m = send(m, tea.KeyMsg{Type: tea.KeyEscape})
	m = send(m, TickMsg{})
	f := g.lastFrame()
	if !f.Has(core.ActionPause) || f.Has(core.ActionBack) {
		t.Error("back while playing should become pause")
	}

	g.state.Paused = true
	m = send(m, TickMsg{})
	m = send(m, runeKey("m"))
	send(m, TickMsg{})
	if !g.lastFrame().Has(core.ActionBack) {
		t.Error("back while paused should reach the game")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, Options{Store: store})

	for i := 0; i < 5; i++ {
		m = send(m, TickMsg{})
	}
	g.state = core.GameState{Score: 340, Progress: 4, GameOver: true, Speed: 1.5}
	for i := 0; i < 3; i++ {
		m = send(m, TickMsg{})
	}

	runs, err := store.RecentRuns("fake", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 340 || r.Progress != 4 || r.Ticks != 5 || r.Speed != 1.5 {
		t.Errorf("run = %+v, expected score 340 progress 4 ticks 5 speed 1.5", r)
	}

	high, _ := store.HighScore("fake")
	if high != 340 {
		t.Errorf("HighScore() = %d, expected 340", high)
	}

	// Restart clears the record latch.
	m = send(m, runeKey("r"))
	send(m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
}

func TestModelExitLeavesForMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	g.state = core.GameState{Exited: true}
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)

	if !m.BackToMenu() {
		t.Error("BackToMenu() = false, expected true")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program on exit")
	}

	m.quitOnExit = false
	_, cmd = m.Update(TickMsg{})
	if cmd != nil {
		t.Error("embedded model should stop ticking on exit")
	}
}

func TestModelReportsWaves(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g, Options{})

	g.reporter.Report(core.HUD{Wave: 1})
	g.reporter.Report(core.HUD{Wave: 2, Score: 90})

	h, ok := g.reporter.(*hudTracker)
	if !ok {
		t.Fatal("reporter should be the model's HUD tracker")
	}
	if h.last.Wave != 2 || h.last.Score != 90 {
		t.Errorf("last HUD = %+v, expected wave 2 score 90", h.last)
	}
}

func TestProgressLabel(t *testing.T) {
	tests := []struct {
		game     string
		progress int
		expected string
	}{
		{"squad", 7, "wave 7"},
		{"ski", 312, "312m"},
		{"other", 3, "3"},
	}
	for _, tt := range tests {
		if got := progressLabel(tt.game, tt.progress); got != tt.expected {
			t.Errorf("progressLabel(%q, %d) = %q, expected %q", tt.game, tt.progress, got, tt.expected)
		}
	}

	if got := playTime(90 * 60).String(); got != "1m30s" {
		t.Errorf("playTime(5400) = %s, expected 1m30s", got)
	}
}
