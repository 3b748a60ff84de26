package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders usage and examples for every command
func renderHelp() string {
	usageSection := sectionHeader.Render("Usage:")
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("swatch [ui] [--route /gradient]")+"       Open the palette generator"),
		bodyMedium.Render("  "+commandName.Render("swatch generate --seed <COLOR>")+"        Print the four harmonies of a color"),
		bodyMedium.Render("  "+commandName.Render("swatch generate --start <C> --end <C>")+" Print the four gradients between two colors"),
		bodyMedium.Render("  "+commandName.Render("swatch init [--force] [--dry-run]")+"     Write a swatch.yaml template"),
		bodyMedium.Render("  "+commandName.Render("swatch version")+"                        Show version"),
	)

	examplesSection := sectionHeader.Render("Examples:")
	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("swatch --seed teal")+"                    Start from a CSS color name"),
		bodyMedium.Render("  "+exampleCode.Render("swatch ui -r /gradient")+"                Open on the gradient page"),
		bodyMedium.Render("  "+exampleCode.Render("swatch gen -s '#845EC2' -f json")+"       Palettes as JSON"),
		bodyMedium.Render("  "+exampleCode.Render("swatch gen --start red --end blue -f css")+" Gradients as CSS"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		usageSection,
		usage,
		examplesSection,
		examples,
	) + "\n"
}
