package single

import (
	"github.com/charmbracelet/bubbles/key"

	"swatch/internal/app/ui/components"
)

// KeyMap defines the key bindings for the single color page
type KeyMap struct {
	components.KeyMap
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "palette")
	base.Down.SetHelp("↓/j", "palette")
	base.Left.SetHelp("←/h", "swatch")
	base.Right.SetHelp("→/l", "swatch")
	base.Copy.SetHelp("enter/c", "copy hex")

	return KeyMap{KeyMap: base}
}

// EditingHelp returns the bindings shown while the seed field has focus
func (k KeyMap) EditingHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Browse}
}

// BrowsingHelp returns the bindings shown while moving across swatches
func (k KeyMap) BrowsingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Copy, k.Edit}
}

// HelpKeys returns the bindings for the current mode
func (m Model) HelpKeys() []key.Binding {
	if m.state.editing {
		return m.ui.keys.EditingHelp()
	}

	return m.ui.keys.BrowsingHelp()
}
