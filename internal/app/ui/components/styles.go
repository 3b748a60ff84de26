package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// HeaderStyle wraps the navigation header
	HeaderStyle = lipgloss.NewStyle().
			MarginBottom(1)

	// FooterStyle wraps the version line and help
	FooterStyle = lipgloss.NewStyle().
			MarginTop(1)

	// ContentStyle pads the active page
	ContentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// FooterHelpStyle indents the help line
	FooterHelpStyle = lipgloss.NewStyle().
			Padding(0, 2)

	// NavActiveStyle for the route currently on screen
	NavActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary).
			Background(BgSelection).
			Padding(0, 1)

	// NavInactiveStyle for the other routes
	NavInactiveStyle = lipgloss.NewStyle().
				Foreground(FgMuted).
				Padding(0, 1)

	// PaletteTitleStyle for the name above a palette
	PaletteTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(FgMuted)

	// SelectedTitleStyle for the name of the palette under the cursor
	SelectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(FgPrimary)

	// InputLabelStyle for seed field labels
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Width(7)

	// FocusedLabelStyle for the label of the field being edited
	FocusedLabelStyle = InputLabelStyle.
				Foreground(FgPrimary).
				Bold(true)

	// ErrorStyle for invalid seed messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)

	// NoticeCopyingStyle for a copy in flight
	NoticeCopyingStyle = lipgloss.NewStyle().
				Foreground(FgPending)

	// NoticeCopiedStyle for a successful copy
	NoticeCopiedStyle = lipgloss.NewStyle().
				Foreground(FgSuccess).
				Bold(true)

	// NoticeFailedStyle for a failed copy
	NoticeFailedStyle = lipgloss.NewStyle().
				Foreground(FgError).
				Bold(true)

	// PulseStyle for the copied marker
	PulseStyle = lipgloss.NewStyle().
			Foreground(FgSuccess)
)
