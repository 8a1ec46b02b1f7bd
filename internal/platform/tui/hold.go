package tui

import (
	"github.com/vovakirdan/squad-arcade/internal/core"
)

// Hold windows. Terminals deliver a first press, pause for the keyboard's
// repeat delay, then repeat quickly; nothing arrives on release.
const (
	initialHoldMillis = 550
	repeatHoldMillis  = 150
)

// holdTracker keeps an action held for a few ticks after each key event.
type holdTracker struct {
	remaining map[core.Action]int
	initial   int
	repeat    int
}

func newHoldTracker(tickRate int) *holdTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &holdTracker{
		remaining: make(map[core.Action]int),
		initial:   max(tickRate*initialHoldMillis/1000, 1),
		repeat:    max(tickRate*repeatHoldMillis/1000, 1),
	}
}

// Press starts or extends the hold window for a.
func (h *holdTracker) Press(a core.Action) {
	if n := h.remaining[a]; n > 0 {
		h.remaining[a] = max(n, h.repeat)
		return
	}
	h.remaining[a] = h.initial
}

// Release drops a without waiting for its window to run out.
func (h *holdTracker) Release(a core.Action) {
	delete(h.remaining, a)
}

// Apply marks every action still inside its window as held, then
// consumes one tick of each window.
func (h *holdTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Clear drops every hold.
func (h *holdTracker) Clear() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
