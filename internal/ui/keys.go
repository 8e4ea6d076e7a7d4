package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the exit prompt.
type KeyMap struct {
	Exit key.Binding
}

// DefaultKeys returns the default key bindings for the exit prompt.
func DefaultKeys() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("enter", "ctrl+j", "q", "esc", "ctrl+c"),
			key.WithHelp("enter", "exit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Exit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Exit}}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	return help.New()
}
