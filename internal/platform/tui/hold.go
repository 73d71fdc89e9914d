package tui

import (
	"time"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
)

// HoldTracker turns terminal key presses into held keys.
// Terminals report presses and auto-repeats but never releases, so a key
// is considered held for as long as presses keep arriving in time.
type HoldTracker struct {
	initial time.Duration // Wait for the first auto-repeat
	repeat  time.Duration // Wait between auto-repeats
	gap     time.Duration // Longer pauses while repeating are fresh taps
	keys    map[core.Action]*holdState
}

type holdState struct {
	last      time.Time
	repeating bool
	retapped  bool // Report one released tick before holding again
}

// NewHoldTracker creates a tracker using the given input timings.
func NewHoldTracker(cfg config.Input) *HoldTracker {
	return &HoldTracker{
		initial: cfg.InitialHold(),
		repeat:  cfg.RepeatHold(),
		gap:     cfg.RepeatGap(),
		keys:    make(map[core.Action]*holdState),
	}
}

// Press records a key press at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	// Walking one way lets go of the other
	switch a {
	case core.ActionLeft:
		delete(h.keys, core.ActionRight)
	case core.ActionRight:
		delete(h.keys, core.ActionLeft)
	}

	st, ok := h.keys[a]
	if !ok || !h.held(st, now) {
		h.keys[a] = &holdState{last: now}
		return
	}

	if st.repeating && now.Sub(st.last) > h.gap {
		st.retapped = true
		st.repeating = false
	} else {
		st.repeating = true
	}
	st.last = now
}

// Frame returns the input frame for a tick at now.
// Keys that are no longer held are forgotten.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, st := range h.keys {
		switch {
		case st.retapped:
			st.retapped = false
		case h.held(st, now):
			in.Set(a)
		default:
			delete(h.keys, a)
		}
	}
	return in
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}

func (h *HoldTracker) held(st *holdState, now time.Time) bool {
	window := h.initial
	if st.repeating {
		window = h.repeat
	}
	return now.Sub(st.last) < window
}
