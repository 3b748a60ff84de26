package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/app/clipboard"
)

// TickMsg drives notice expiry and animations
type TickMsg time.Time

// CopyResultMsg carries the outcome of a clipboard write back to the page that started it
type CopyResultMsg struct {
	Owner string
	Seq   int
	Text  string
	Err   error
}

// TickCmd schedules the next UI tick
func TickCmd() tea.Cmd {
	return tea.Tick(UITickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CopyCmd writes text to the clipboard off the event loop
func CopyCmd(cb clipboard.Clipboard, owner string, seq int, text string) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{
			Owner: owner,
			Seq:   seq,
			Text:  text,
			Err:   cb.Write(text),
		}
	}
}
