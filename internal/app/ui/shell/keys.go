package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings handled by the shell before a page sees them
type KeyMap struct {
	Toggle    key.Binding
	Single    key.Binding
	Gradient  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default shell bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch page"),
		),
		Single: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "single"),
		),
		Gradient: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "gradient"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
