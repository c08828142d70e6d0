package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickhero/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// ActionHold from a key means "toggle the hold level": terminals report no key release.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "enter":
		return core.ActionHold, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// ApplyKey updates the pointer or the input frame for a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) ApplyKey(msg tea.KeyMsg, pointer *core.Pointer, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit:
	case core.ActionHold:
		pointer.Toggle()
	default:
		frame.Set(action)
	}
	return isQuit
}

// ApplyMouse drives the pointer from mouse events: a left press holds, any
// release lets go. Some terminals report releases without a button.
// Returns true if the event changed the pointer.
func (km *KeyMapper) ApplyMouse(msg tea.MouseMsg, pointer *core.Pointer) bool {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		pointer.Down()
		return true
	case msg.Action == tea.MouseActionRelease:
		pointer.Up()
		return true
	}
	return false
}
