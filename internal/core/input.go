package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H - walk left
	ActionRight        // Right arrow, D, L - walk right
	ActionUp           // Up arrow, W, K - unused by the match, part of the input contract
	ActionDown         // Down arrow, S, J - unused by the match, part of the input contract
	ActionFire         // Space - fire a shot, start/leave screens
	ActionQuit         // Q, Ctrl+C - close the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// An action present in the frame is held down for that tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// EdgeTrigger converts a held signal into single presses.
// Update reports true only on the tick the signal goes from released to held;
// the signal must be released again before it can fire another time.
type EdgeTrigger struct {
	down bool
}

// Update feeds the current level and reports whether a fresh press occurred.
func (e *EdgeTrigger) Update(down bool) bool {
	pressed := down && !e.down
	e.down = down
	return pressed
}

// Reset forgets the previous level, as if the input had been released.
func (e *EdgeTrigger) Reset() {
	e.down = false
}
