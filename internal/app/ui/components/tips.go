package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains hints rotated through the footer
var Tips = []string{
	tipDesc("Seeds accept ") + tipKey("#abc") + tipDesc(", ") + tipKey("rgb()") + tipDesc(", ") + tipKey("hsl()") + tipDesc(" or names like ") + tipKey("teal"),
	tipDesc("Print palettes without the TUI with ") + tipKey("swatch generate"),
	tipDesc("Copy over SSH with ") + tipKey("clipboard.mode: osc52"),
	tipDesc("Start on the gradient page with ") + tipKey("swatch ui --route /gradient"),
	tipDesc("Write a config template with ") + tipKey("swatch init"),
}

// TipAt returns the tip shown after the given number of UI ticks
func TipAt(ticks int) string {
	if len(Tips) == 0 {
		return ""
	}

	return Tips[(ticks/TipRotationTicks)%len(Tips)]
}
