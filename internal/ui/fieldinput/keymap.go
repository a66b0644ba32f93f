package fieldinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the modifier-held editing command bindings.
type KeyMap struct {
	Undo           key.Binding
	Redo           key.Binding
	SelectAll      key.Binding
	DeleteWordBack key.Binding
}

// DefaultKeyMap is the standard editing command set.
var DefaultKeyMap = KeyMap{
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "redo"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "select all"),
	),
	DeleteWordBack: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("ctrl+w", "delete word"),
	),
}
