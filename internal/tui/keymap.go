package tui

import "github.com/charmbracelet/bubbles/key"

// ConfirmKeyMap defines the key bindings for the confirmation prompt.
type ConfirmKeyMap struct {
	Yes  key.Binding
	No   key.Binding
	All  key.Binding
	Open key.Binding
	Quit key.Binding
}

// DefaultConfirmKeyMap returns the default confirmation key bindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "reassign"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "skip"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "reassign all remaining"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown below the prompt.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.All, k.Open, k.Quit}
}
