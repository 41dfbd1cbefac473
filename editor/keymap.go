package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	PageUp, PageDown      key.Binding

	Enter, Backspace key.Binding

	// Exit asks whether to save; ConfirmSave is the affirmative answer.
	Exit        key.Binding
	ConfirmSave key.Binding
	// Quit leaves immediately without saving.
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		// Terminals send either CR or LF for enter, and DEL or BS for backspace.
		Enter:     key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter", "newline")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),

		Exit:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "exit")),
		ConfirmSave: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "save and exit")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),
	}
}
