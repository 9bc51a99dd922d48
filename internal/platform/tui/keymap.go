package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glyphkit/glyphkit/internal/event"
)

// KeyMapper translates Bubble Tea key messages to kit key codes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a kit key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k event.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return event.KeyQuit, true
	case "w", "up", "k":
		return event.KeyUp, false
	case "s", "down", "j":
		return event.KeyDown, false
	case "a", "left", "h":
		return event.KeyLeft, false
	case "d", "right", "l":
		return event.KeyRight, false
	case " ":
		return event.KeySpace, false
	case "enter":
		return event.KeyEnter, false
	case "esc":
		return event.KeyEscape, false
	case "p":
		return event.KeyPause, false
	case "r":
		return event.KeyRestart, false
	}
	return event.KeyNone, false
}
