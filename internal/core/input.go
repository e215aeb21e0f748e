package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Move cursor up
	ActionDown               // Move cursor down
	ActionLeft               // Move cursor left
	ActionRight              // Move cursor right
	ActionPlace              // Place a mark under the cursor
	ActionStepBack           // Jump one step back in history
	ActionStepForward        // Jump one step forward in history
	ActionFirstStep          // Jump to the game start
	ActionLastStep           // Jump to the latest move
	ActionToggleOrder        // Flip move list order
	ActionRestart            // Start a new game
	ActionQuit               // Exit
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
	case ActionPlace:
		return "Place"
	case ActionStepBack:
		return "StepBack"
	case ActionStepForward:
		return "StepForward"
	case ActionFirstStep:
		return "FirstStep"
	case ActionLastStep:
		return "LastStep"
	case ActionToggleOrder:
		return "ToggleOrder"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse click in screen coordinates.
type Pointer struct {
	X, Y    int
	Clicked bool
}

// InputFrame holds the actions triggered by one key press or click.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf creates a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// Click records a mouse click at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Clicked: true}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}
