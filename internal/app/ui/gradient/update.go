package gradient

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/app/palette"
	"swatch/internal/app/ui/components"
)

// Update handles messages routed to this page by the shell
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.editing {
			return m.handleEditingKey(msg)
		}

		return m.handleBrowsingKey(msg)

	case components.CopyResultMsg:
		if msg.Owner != Owner {
			return m, nil
		}

		return m.handleCopyResult(msg), nil

	case components.TickMsg:
		m.ui.notice.Tick(components.UITickInterval)
		m.ui.pulse.Update()

		return m, nil
	}

	if m.state.editing {
		return m.updateFocusedInput(msg)
	}

	return m, nil
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Generate):
		m = m.generate()
		if m.state.err == nil {
			m.blur()
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.Browse):
		if len(m.state.set) > 0 {
			m.blur()
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.NextField):
		return m.focusField((m.ui.focus + 1) % fieldCount)

	case key.Matches(msg, m.ui.keys.PrevField):
		return m.focusField((m.ui.focus + fieldCount - 1) % fieldCount)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Up), key.Matches(msg, m.ui.keys.Left):
		m.state.row--
		m.clampSelection()
	case key.Matches(msg, m.ui.keys.Down), key.Matches(msg, m.ui.keys.Right):
		m.state.row++
		m.clampSelection()
	case key.Matches(msg, m.ui.keys.Copy):
		return m.copySelected()
	case key.Matches(msg, m.ui.keys.Edit):
		m.state.editing = true
		return m, m.ui.inputs[m.ui.focus].Focus()
	}

	return m, nil
}

// copySelected starts a clipboard write of the CSS for the gradient under the cursor
func (m Model) copySelected() (Model, tea.Cmd) {
	if len(m.state.set) == 0 {
		return m, nil
	}

	text := palette.GradientCSS(m.state.set[m.state.row])
	seq := m.ui.notice.Begin(components.Target{Row: m.state.row})

	m.ui.pulse.Stop()
	m.log.Debug().Str("text", text).Int("seq", seq).Msg("Copying gradient")

	return m, components.CopyCmd(m.clipboard, Owner, seq, text)
}

func (m Model) handleCopyResult(msg components.CopyResultMsg) Model {
	if !m.ui.notice.Resolve(msg.Seq, msg.Err) {
		m.log.Debug().Int("seq", msg.Seq).Msg("Ignoring superseded copy result")
		return m
	}

	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Str("text", msg.Text).Msg("Copy failed")
		return m
	}

	m.ui.pulse.Start()
	m.log.Info().Str("text", msg.Text).Msg("Copied to clipboard")

	return m
}

func (m Model) focusField(field int) (Model, tea.Cmd) {
	m.ui.inputs[m.ui.focus].Blur()
	m.ui.focus = field

	return m, m.ui.inputs[field].Focus()
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	m.ui.inputs[m.ui.focus], cmd = m.ui.inputs[m.ui.focus].Update(msg)

	return m, cmd
}

func (m *Model) blur() {
	m.state.editing = false
	m.ui.inputs[m.ui.focus].Blur()
}
