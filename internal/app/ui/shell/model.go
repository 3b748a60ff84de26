package shell

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"swatch/internal/app/ui/components"
	"swatch/internal/app/ui/gradient"
	"swatch/internal/app/ui/navigation"
	"swatch/internal/app/ui/single"
	"swatch/internal/config/logger"
)

// Model is the root Bubble Tea model: navigation around the two pages
type Model struct {
	navigator navigation.Navigator
	single    single.Model
	gradient  gradient.Model

	ui struct {
		width     int
		height    int
		ready     bool
		keys      KeyMap
		help      help.Model
		viewport  viewport.Model
		ticks     int
		tipOffset int
	}

	log logger.Logger
}

// NewModel wires both pages under one navigator
func NewModel(nav navigation.Navigator, s single.Model, g gradient.Model, log logger.Logger) Model {
	m := Model{
		navigator: nav,
		single:    s,
		gradient:  g,
		log:       log.WithComponent("SHELL"),
	}

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)
	m.ui.tipOffset = rand.Intn(len(components.Tips)) * components.TipRotationTicks //nolint:gosec // not security-critical

	return m
}

// Init starts the UI tick and the cursor blink of the focused field
func (m Model) Init() tea.Cmd {
	return tea.Batch(components.TickCmd(), textinput.Blink)
}

// Route returns the page on screen
func (m Model) Route() navigation.Route {
	return m.navigator.Current()
}

// editing reports whether the page on screen has a focused text field
func (m Model) editing() bool {
	if m.navigator.Current() == navigation.RouteGradient {
		return m.gradient.Editing()
	}

	return m.single.Editing()
}

// helpKeys combines the page bindings with the shell bindings valid in the current mode
func (m Model) helpKeys() []key.Binding {
	var bindings []key.Binding

	if m.navigator.Current() == navigation.RouteGradient {
		bindings = m.gradient.HelpKeys()
	} else {
		bindings = m.single.HelpKeys()
	}

	bindings = append(bindings, m.ui.keys.Toggle)

	if m.editing() {
		return append(bindings, m.ui.keys.ForceQuit)
	}

	return append(bindings, m.ui.keys.Quit)
}
