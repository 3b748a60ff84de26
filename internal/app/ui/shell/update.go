package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/app/ui/components"
	"swatch/internal/app/ui/navigation"
)

// Tick counter wraps to keep tip rotation arithmetic small
const tickCounterMaximum = 1000000

// Update handles messages and routes them to the pages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.ready = true

		m.ui.viewport.Width = msg.Width
		m.ui.viewport.Height = max(msg.Height-components.HeaderHeight-components.FooterHeight, 1)

		cmd := m.broadcast(msg)
		m.refresh(true)

		return m, cmd

	case components.TickMsg:
		m.ui.ticks++
		if m.ui.ticks >= tickCounterMaximum {
			m.ui.ticks = 0
		}

		cmd := m.broadcast(msg)
		m.refresh(false)

		return m, tea.Batch(cmd, components.TickCmd())

	case components.CopyResultMsg:
		cmd := m.broadcast(msg)
		m.refresh(false)

		return m, cmd
	}

	cmd := m.forward(msg)
	m.refresh(false)

	return m, cmd
}

// handleKeyPress applies shell bindings and passes everything else to the page on screen
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Info().Msg("Quit requested")
		return m, tea.Quit
	}

	if key.Matches(msg, m.ui.keys.Toggle) {
		m.navigator.Toggle()
		m.log.Debug().Str("route", m.navigator.Current().String()).Msg("Switched page")
		m.refresh(true)

		return m, nil
	}

	if !m.editing() {
		switch {
		case key.Matches(msg, m.ui.keys.Quit):
			m.log.Info().Msg("Quit requested")
			return m, tea.Quit
		case key.Matches(msg, m.ui.keys.Single):
			return m.switchTo(navigation.RouteSingle), nil
		case key.Matches(msg, m.ui.keys.Gradient):
			return m.switchTo(navigation.RouteGradient), nil
		case key.Matches(msg, m.ui.keys.PageUp):
			m.ui.viewport.SetYOffset(m.ui.viewport.YOffset - m.ui.viewport.Height/2)
			return m, nil
		case key.Matches(msg, m.ui.keys.PageDown):
			m.ui.viewport.SetYOffset(m.ui.viewport.YOffset + m.ui.viewport.Height/2)
			return m, nil
		}
	}

	cmd := m.forward(msg)
	m.refresh(true)

	return m, cmd
}

func (m Model) switchTo(route navigation.Route) Model {
	m.navigator.SwitchTo(route)
	m.log.Debug().Str("route", route.String()).Msg("Switched page")
	m.refresh(true)

	return m
}

// forward sends msg to the page on screen only
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if m.navigator.Current() == navigation.RouteGradient {
		m.gradient, cmd = m.gradient.Update(msg)
	} else {
		m.single, cmd = m.single.Update(msg)
	}

	return cmd
}

// broadcast sends msg to both pages; each keeps its own state while hidden
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var singleCmd, gradientCmd tea.Cmd

	m.single, singleCmd = m.single.Update(msg)
	m.gradient, gradientCmd = m.gradient.Update(msg)

	return tea.Batch(singleCmd, gradientCmd)
}

// refresh re-renders the page on screen into the viewport; with follow set the
// viewport scrolls so the selected palette stays visible
func (m *Model) refresh(follow bool) {
	var (
		content     string
		top, bottom int
		editing     bool
	)

	if m.navigator.Current() == navigation.RouteGradient {
		content = m.gradient.View()
		top, bottom = m.gradient.Selection()
		editing = m.gradient.Editing()
	} else {
		content = m.single.View()
		top, bottom = m.single.Selection()
		editing = m.single.Editing()
	}

	m.ui.viewport.SetContent(components.RenderContent(content))

	if !follow {
		return
	}

	if editing {
		m.ui.viewport.GotoTop()
		return
	}

	if top < m.ui.viewport.YOffset {
		m.ui.viewport.SetYOffset(top)
	} else if bottom >= m.ui.viewport.YOffset+m.ui.viewport.Height {
		m.ui.viewport.SetYOffset(bottom - m.ui.viewport.Height + 1)
	}
}
