package shell

import (
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/app/ui/components"
)

// View renders the header, the page on screen and the footer
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.ui.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	routes := m.navigator.Routes()
	items := make([]string, len(routes))
	active := 0

	for i, r := range routes {
		items[i] = r.Title()
		if r == m.navigator.Current() {
			active = i
		}
	}

	return components.RenderHeader(m.ui.width, components.RenderNavBar(items, active), m.navigator.Current().String())
}

func (m Model) renderFooter() string {
	helpText := m.ui.help.ShortHelpView(m.helpKeys())
	tip := components.TipAt(m.ui.ticks + m.ui.tipOffset)

	return components.RenderFooter(m.ui.width, helpText, tip)
}
