package gradient

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"swatch/internal/app/clipboard"
	"swatch/internal/app/palette"
	"swatch/internal/app/ui/components"
	"swatch/internal/config/logger"
)

// Owner tags copy results started by this page
const Owner = "gradient"

// Seed field indexes
const (
	fieldStart = iota
	fieldEnd
	fieldCount
)

var fieldLabels = [fieldCount]string{"Start", "End"}

// Model is the gradient page: two seed fields and the four gradients between them
type Model struct {
	clipboard clipboard.Clipboard

	state struct {
		set     palette.Set
		row     int
		editing bool
		err     error
	}

	ui struct {
		width  int
		inputs [fieldCount]textinput.Model
		focus  int
		keys   KeyMap
		notice *components.Notice
		pulse  *components.Pulse
	}

	log logger.Logger
}

// NewModel creates the page in editing mode and generates the first set from the two seeds
func NewModel(start, end string, cb clipboard.Clipboard, noticeDuration time.Duration, log logger.Logger) Model {
	m := Model{
		clipboard: cb,
		log:       log.WithComponent("GRADIENT"),
	}

	for i, value := range [fieldCount]string{start, end} {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = components.InputCharLimit
		input.Width = components.InputWidth
		input.SetValue(value)
		m.ui.inputs[i] = input
	}

	m.ui.inputs[fieldStart].Placeholder = "#845EC2"
	m.ui.inputs[fieldEnd].Placeholder = "#2196F3"
	m.ui.inputs[fieldStart].Focus()

	m.ui.keys = DefaultKeyMap()
	m.ui.notice = components.NewNotice(noticeDuration)
	m.ui.pulse = components.NewPulse()
	m.state.editing = true

	return m.generate()
}

// Set returns the gradients currently on screen
func (m Model) Set() palette.Set {
	return m.state.set
}

// Editing reports whether a seed field has focus
func (m Model) Editing() bool {
	return m.state.editing
}

// Err returns the parse error of the last generate, if any
func (m Model) Err() error {
	return m.state.err
}

// Selected returns the gradient under the cursor
func (m Model) Selected() int {
	return m.state.row
}

// Focused returns the index of the seed field being edited
func (m Model) Focused() int {
	return m.ui.focus
}

// Notice exposes the copy notice for rendering and tests
func (m Model) Notice() *components.Notice {
	return m.ui.notice
}

// generate derives a new set from both seed fields; on failure the previous set is kept
func (m Model) generate() Model {
	start := m.ui.inputs[fieldStart].Value()
	end := m.ui.inputs[fieldEnd].Value()

	set, err := palette.GradientFromText(start, end)
	if err != nil {
		m.state.err = err
		m.log.Warn().Err(err).Str("start", start).Str("end", end).Msg("Seed rejected")

		return m
	}

	m.state.set = set
	m.state.err = nil
	m.clampSelection()

	m.log.Debug().Str("start", start).Str("end", end).Int("gradients", len(set)).Msg("Generated gradients")

	return m
}

func (m *Model) clampSelection() {
	switch {
	case len(m.state.set) == 0, m.state.row < 0:
		m.state.row = 0
	case m.state.row >= len(m.state.set):
		m.state.row = len(m.state.set) - 1
	}
}
