package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // W, Up arrow, Space - jump when grounded
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit session
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
	case ActionJump:
		return "Jump"
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

// InputFrame represents the input state for a single simulation tick.
// Movement actions are level-triggered: set means the key is currently held.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldKeys tracks which actions are currently held. Terminals deliver key
// presses (and auto-repeat) but no release events, so "held" is emulated:
// each press latches the action for holdTicks simulation ticks, and terminal
// auto-repeat keeps refreshing the latch while the key stays down.
type HeldKeys struct {
	expiry    map[Action]uint64
	tick      uint64
	holdTicks uint64
}

// NewHeldKeys creates a tracker where a press counts as held for holdTicks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		expiry:    make(map[Action]uint64),
		holdTicks: uint64(holdTicks),
	}
}

// Press records a key press for the given action.
func (h *HeldKeys) Press(a Action) {
	h.expiry[a] = h.tick + h.holdTicks
}

// Advance moves the tracker forward one simulation tick.
func (h *HeldKeys) Advance() {
	h.tick++
	for a, until := range h.expiry {
		if until <= h.tick {
			delete(h.expiry, a)
		}
	}
}

// Held returns true if the action is currently considered held.
func (h *HeldKeys) Held(a Action) bool {
	until, ok := h.expiry[a]
	return ok && until > h.tick
}

// Frame builds an input frame from the currently held actions.
func (h *HeldKeys) Frame() InputFrame {
	f := NewInputFrame()
	for a, until := range h.expiry {
		if until > h.tick {
			f.Set(a)
		}
	}
	return f
}

// Reset drops all held state.
func (h *HeldKeys) Reset() {
	h.expiry = make(map[Action]uint64)
	h.tick = 0
}
