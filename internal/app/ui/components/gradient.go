package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/app/colormath"
)

// GradientBarWidth fits a gradient bar into the available terminal width
func GradientBarWidth(termWidth int) int {
	if termWidth <= 0 {
		return DefaultGradientBar
	}

	width := termWidth - GradientBarPadding

	switch {
	case width < MinGradientBarWidth:
		return MinGradientBarWidth
	case width > MaxGradientBarWidth:
		return MaxGradientBarWidth
	default:
		return width
	}
}

// RenderGradientBar paints the stops as a continuous bar, one interpolated color per column
func RenderGradientBar(stops colormath.Palette, width int) string {
	if len(stops) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder

	for _, c := range colormath.Scale(stops, width) {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}

	row := b.String()
	rows := make([]string, GradientBarHeight)

	for i := range rows {
		rows[i] = row
	}

	return strings.Join(rows, "\n")
}

// RenderGradientLabels spreads the hex values of the stops under a bar of the given width
func RenderGradientLabels(stops colormath.Palette, width int) string {
	if len(stops) == 0 {
		return ""
	}

	if width < len(stops)*HexLabelWidth {
		width = len(stops) * HexLabelWidth
	}

	line := []rune(strings.Repeat(" ", width))

	for i, c := range stops {
		pos := 0
		if len(stops) > 1 {
			pos = i * (width - HexLabelWidth) / (len(stops) - 1)
		}

		copy(line[pos:], []rune(c.Hex()))
	}

	return HelpStyle.Render(strings.TrimRight(string(line), " "))
}
