package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderNavBar renders the route labels with the active one highlighted
func RenderNavBar(items []string, active int) string {
	rendered := make([]string, len(items))

	for i, item := range items {
		label := fmt.Sprintf("%d %s", i+1, item)
		if i == active {
			rendered[i] = NavActiveStyle.Render(label)
		} else {
			rendered[i] = NavInactiveStyle.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if titleWidth > maxTitleWidth && maxTitleWidth > 0 {
		title = truncate(title, maxTitleWidth)
		titleWidth = lipgloss.Width(title)
	}

	separatorWidth := width - titleWidth - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	return HeaderStyle.Render(RenderLine(3) + " " + title + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3))
}

// RenderFooter renders the footer with version line, help text and an optional tip
func RenderFooter(width int, helpText, tip string) string {
	version := fmt.Sprintf("%s v%s", config.AppName, config.Version)
	versionWidth := lipgloss.Width(version)

	separatorWidth := width - versionWidth - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	versionLine := RenderLine(separatorWidth) + " " + HelpStyle.Render(version) + " " + RenderLine(3)
	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	if tip != "" && lipgloss.Width(help)+lipgloss.Width(tip)+2 <= width {
		help = help + "  " + tip
	}

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, help))
}

// RenderContent wraps content with spacing
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if maxWidth == 1 {
		return "…"
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}
