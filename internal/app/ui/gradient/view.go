package gradient

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/app/ui/components"
)

// View renders the seed fields and the gradient bars
func (m Model) View() string {
	content, _, _ := m.render()
	return content
}

// Selection returns the first and last content line of the selected gradient
func (m Model) Selection() (int, int) {
	_, top, bottom := m.render()
	return top, bottom
}

func (m Model) render() (string, int, int) {
	blocks := make([]string, 0, fieldCount+2+2*len(m.state.set))

	for i := range m.ui.inputs {
		blocks = append(blocks, m.renderInput(i))
	}

	blocks = append(blocks, m.renderError(), "")

	width := components.GradientBarWidth(m.ui.width)
	line := len(blocks)
	top, bottom := 0, 0

	for i, p := range m.state.set {
		titleStyle := components.PaletteTitleStyle
		if i == m.state.row && !m.state.editing {
			titleStyle = components.SelectedTitleStyle
		}

		block := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(p.Kind.Title()),
			components.RenderGradientBar(p.Colors, width),
			components.RenderGradientLabels(p.Colors, width),
			m.renderNotice(i),
		)

		if i == m.state.row {
			top = line
			bottom = line + lipgloss.Height(block) - 1
		}

		blocks = append(blocks, block, "")
		line += lipgloss.Height(block) + 1
	}

	return strings.Join(blocks, "\n"), top, bottom
}

func (m Model) renderInput(field int) string {
	label := components.InputLabelStyle.Render(fieldLabels[field])
	if m.state.editing && field == m.ui.focus {
		label = components.FocusedLabelStyle.Render(fieldLabels[field])
	}

	return label + m.ui.inputs[field].View()
}

func (m Model) renderError() string {
	if m.state.err == nil {
		return ""
	}

	return components.ErrorStyle.Render(m.state.err.Error())
}

func (m Model) renderNotice(row int) string {
	n := m.ui.notice
	if !n.Active() || n.Target().Row != row {
		return ""
	}

	marker := m.ui.pulse.Render(components.PulseStyle)
	if marker != "" {
		marker += " "
	}

	return marker + n.Render()
}
