package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"maxcatch/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key. Quit requests (window
// close, ctrl+c, q) are reported separately from keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (key core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyNone, true
	case "esc":
		return core.KeyEscape, false
	case "p":
		return core.KeyPause, false
	case "left", "a", "h":
		return core.KeyLeft, false
	case "right", "d", "l":
		return core.KeyRight, false
	}
	return core.KeyNone, false
}
