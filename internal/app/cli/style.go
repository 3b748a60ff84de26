package cli

import (
	"github.com/charmbracelet/lipgloss"

	"swatch/internal/config"
)

// Headline and body styles for the help and version screens
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#845EC2")).MarginTop(1)
	titleMedium   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00C9A7"))
	bodyMedium    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	labelMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
)

// Semantic styles mapped onto the scale above
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	commandName   = titleMedium
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	paletteName   = labelMedium.Bold(true)

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#845EC2"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// AppDescription is the one-line summary under the title
const AppDescription = "Color palettes and gradients from a seed color, copied as hex or CSS"

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyMedium.Render(AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}
