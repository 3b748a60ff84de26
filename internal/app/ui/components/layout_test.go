package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"swatch/internal/config"
)

func Test_RenderLine(t *testing.T) {
	tests := []struct {
		name  string
		width int
		runes int
	}{
		{name: "Positive width", width: 5, runes: 5},
		{name: "Zero width", width: 0, runes: 0},
		{name: "Negative width clamps", width: -3, runes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.runes, strings.Count(RenderLine(tt.width), "─"))
		})
	}
}

func Test_RenderNavBar(t *testing.T) {
	result := RenderNavBar([]string{"Single color", "Gradient"}, 1)

	assert.Contains(t, result, "1 Single color")
	assert.Contains(t, result, "2 Gradient")
	assert.Equal(t, 1, lipgloss.Height(result))
}

func Test_RenderHeader(t *testing.T) {
	tests := []struct {
		name  string
		width int
		title string
		info  string
	}{
		{name: "Wide terminal", width: 80, title: "swatch", info: "Gradient"},
		{name: "Narrow terminal", width: 20, title: "swatch", info: "Gradient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderHeader(tt.width, tt.title, tt.info)

			assert.Contains(t, result, tt.title)
			assert.Contains(t, result, tt.info)
		})
	}
}

func Test_RenderFooter(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		help    string
		tip     string
		wantTip bool
	}{
		{name: "Help only", width: 80, help: "q quit"},
		{name: "Help and tip", width: 80, help: "q quit", tip: "a tip", wantTip: true},
		{name: "Narrow width hides tip", width: 12, help: "q quit", tip: "a long tip that does not fit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderFooter(tt.width, tt.help, tt.tip)

			assert.Contains(t, result, tt.help)
			assert.Contains(t, result, "v"+config.Version)

			if tt.tip == "" {
				return
			}

			if tt.wantTip {
				assert.Contains(t, result, tt.tip)
			} else {
				assert.NotContains(t, result, tt.tip)
			}
		})
	}
}

func Test_truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "Fits", input: "hello", width: 5, expected: "hello"},
		{name: "Truncated", input: "hello world", width: 8, expected: "hello w…"},
		{name: "Width one", input: "hello", width: 1, expected: "…"},
		{name: "Width zero", input: "hello", width: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.width))
		})
	}
}

func Test_TipAt(t *testing.T) {
	assert.Equal(t, Tips[0], TipAt(0))
	assert.Equal(t, Tips[0], TipAt(TipRotationTicks-1))
	assert.Equal(t, Tips[1], TipAt(TipRotationTicks))
	assert.Equal(t, Tips[0], TipAt(TipRotationTicks*len(Tips)))
}
