package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction is what a key means to the game screen. Everything else is
// typing and goes to the text input.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeySubmit
	KeyQuit
)

// KeyMapper translates Bubble Tea key messages to screen actions.
// Letters are never bound so the player can type any guess.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a screen action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyAction {
	switch msg.String() {
	case "ctrl+c", "esc":
		return KeyQuit
	case "enter":
		return KeySubmit
	}
	return KeyNone
}
