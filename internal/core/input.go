package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games consume high-level intents so the same engine works under any binding.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up, rotate in Tetris
	ActionDown           // S, Down arrow - move down, soft drop
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space - confirm / spin the wheel / hard drop
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionHold           // C - hold the current Tetris piece
	ActionNote           // N - toggle Sudoku pencil-mark mode
	ActionErase          // X, Backspace - erase a Sudoku cell
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionHold:
		return "Hold"
	case ActionNote:
		return "Note"
	case ActionErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It carries all actions triggered during the frame plus an optional digit
// (1-9) for games that take numeric input, like Sudoku.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Digit is the number key pressed this frame, or 0 when none was.
	Digit int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetDigit records a number key (1-9) pressed this frame.
// Values outside that range are ignored.
func (f *InputFrame) SetDigit(d int) {
	if d >= 1 && d <= 9 {
		f.Digit = d
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the digit for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digit = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Digit = f.Digit
	return clone
}
