package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings used by both pages
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Generate key.Binding
	Browse   key.Binding
}

// DefaultKeyMap returns the default shared key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter/c", "copy"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "/"),
			key.WithHelp("e", "edit seed"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Browse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "browse"),
		),
	}
}
