package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pgalkin/skyhop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up", " ":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsHeldAction reports whether the action is level-triggered: the simulation
// wants to know it is currently held rather than that it was just pressed.
// Movement and jumping latch through core.HeldKeys; everything else is
// edge-triggered.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}
