package gradient

import (
	"github.com/charmbracelet/bubbles/key"

	"swatch/internal/app/ui/components"
)

// KeyMap defines the key bindings for the gradient page
type KeyMap struct {
	components.KeyMap
	NextField key.Binding
	PrevField key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "gradient")
	base.Down.SetHelp("↓/j", "gradient")
	base.Copy.SetHelp("enter/c", "copy css")

	return KeyMap{
		KeyMap: base,
		NextField: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↑/↓", "field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("up"),
		),
	}
}

// EditingHelp returns the bindings shown while a seed field has focus
func (k KeyMap) EditingHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Generate, k.Browse}
}

// BrowsingHelp returns the bindings shown while moving across gradients
func (k KeyMap) BrowsingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Edit}
}

// HelpKeys returns the bindings for the current mode
func (m Model) HelpKeys() []key.Binding {
	if m.state.editing {
		return m.ui.keys.EditingHelp()
	}

	return m.ui.keys.BrowsingHelp()
}
