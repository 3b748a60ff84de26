package single

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/app/ui/components"
)

// View renders the seed field and the swatch rows
func (m Model) View() string {
	content, _, _ := m.render()
	return content
}

// Selection returns the first and last content line of the selected palette
func (m Model) Selection() (int, int) {
	_, top, bottom := m.render()
	return top, bottom
}

func (m Model) render() (string, int, int) {
	blocks := []string{m.renderInput(), m.renderError(), ""}
	line := len(blocks)
	top, bottom := 0, 0

	for i, p := range m.state.set {
		selected := i == m.state.row && !m.state.editing

		titleStyle := components.PaletteTitleStyle
		if selected {
			titleStyle = components.SelectedTitleStyle
		}

		col := -1
		if selected {
			col = m.state.col
		}

		row := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(p.Kind.Title()),
			components.RenderSwatchRow(p.Colors, col),
			m.renderNotice(i),
		)

		if i == m.state.row {
			top = line
			bottom = line + lipgloss.Height(row) - 1
		}

		blocks = append(blocks, row, "")
		line += lipgloss.Height(row) + 1
	}

	return strings.Join(blocks, "\n"), top, bottom
}

func (m Model) renderInput() string {
	label := components.InputLabelStyle.Render("Seed")
	if m.state.editing {
		label = components.FocusedLabelStyle.Render("Seed")
	}

	return label + m.ui.input.View()
}

func (m Model) renderError() string {
	if m.state.err == nil {
		return ""
	}

	return components.ErrorStyle.Render(m.state.err.Error())
}

// renderNotice places the copy notice under the swatch it belongs to
func (m Model) renderNotice(row int) string {
	n := m.ui.notice
	if !n.Active() || n.Target().Row != row {
		return ""
	}

	marker := m.ui.pulse.Render(components.PulseStyle)
	if marker != "" {
		marker += " "
	}

	return strings.Repeat(" ", components.SwatchColumn(n.Target().Col)) + marker + n.Render()
}
