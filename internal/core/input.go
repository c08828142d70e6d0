package core

// Action is a semantic game action, abstracted from physical keys and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionHold           // Pointer held down (level signal, set every tick while holding)
	ActionPause          // P, Esc - pause/unpause
	ActionRestart        // R - restart after a failed run
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for a single simulation tick.
type InputFrame struct {
	Actions map[Action]bool
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

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Pointer turns discrete press/release edges into one "holding" level.
//
// Edges arriving between two ticks are not queued: each one overwrites the
// level, so the next tick observes whichever edge was delivered last.
type Pointer struct {
	holding bool
}

// Down records a pointer press.
func (p *Pointer) Down() {
	p.holding = true
}

// Up records a pointer release.
func (p *Pointer) Up() {
	p.holding = false
}

// Toggle flips the level. Used for keys, since terminals report no key release.
func (p *Pointer) Toggle() {
	p.holding = !p.holding
}

// Holding reports the current level.
func (p *Pointer) Holding() bool {
	return p.holding
}

// Apply sets ActionHold on the frame while the pointer is held.
func (p *Pointer) Apply(f *InputFrame) {
	if p.holding {
		f.Set(ActionHold)
	}
}
