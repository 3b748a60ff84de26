package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI chrome with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#845EC2") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - active nav item

	// Status colors - copy notices and validation
	FgSuccess = lipgloss.Color("10") // Green - copied
	FgPending = lipgloss.Color("11") // Yellow - copying
	FgError   = lipgloss.Color("9")  // Red - copy failed / invalid seed
)

// SeparatorColor is the adaptive color for header and footer rules
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
