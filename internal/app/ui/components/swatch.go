package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/app/colormath"
)

// RenderSwatch renders one color block labelled with its hex value in a legible foreground
func RenderSwatch(c colormath.Color, selected bool) string {
	block := lipgloss.NewStyle().
		Width(SwatchWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colormath.Foreground(c).Hex())).
		Render(c.Hex())

	frame := lipgloss.NewStyle().Border(lipgloss.HiddenBorder())
	if selected {
		frame = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(FgPrimary)
	}

	return frame.Render(block)
}

// RenderSwatchRow renders a palette left to right; selected is the highlighted index or -1
func RenderSwatchRow(p colormath.Palette, selected int) string {
	if len(p) == 0 {
		return ""
	}

	blocks := make([]string, 0, 2*len(p)-1)
	gap := strings.Repeat(" ", SwatchGap)

	for i, c := range p {
		if i > 0 {
			blocks = append(blocks, gap)
		}

		blocks = append(blocks, RenderSwatch(c, i == selected))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// SwatchColumn returns the horizontal offset of swatch i within a row
func SwatchColumn(i int) int {
	return i * (SwatchWidth + SwatchBorderWidth + SwatchGap)
}
