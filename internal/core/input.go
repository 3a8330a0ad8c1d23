package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionSelect         // Space, Enter - anchor or commit a selection
	ActionCancel         // Esc - drop the current selection
	ActionHint           // ? - reveal the first letter of a hidden word
	ActionGiveUp         // G - reveal all words and end the puzzle
	ActionNext           // N - continue to the next puzzle
	ActionBack           // B - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionHint:
		return "Hint"
	case ActionGiveUp:
		return "GiveUp"
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a mouse drag.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a mouse event in screen cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame holds the input collected for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointers lists mouse events in arrival order.
	Pointers []PointerEvent
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a mouse event to the frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Empty returns true if nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
