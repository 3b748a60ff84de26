package single

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"swatch/internal/app/clipboard"
	"swatch/internal/app/palette"
	"swatch/internal/app/ui/components"
	"swatch/internal/config/logger"
)

// Owner tags copy results started by this page
const Owner = "single"

// Model is the single color page: one seed field and the four harmonies derived from it
type Model struct {
	clipboard clipboard.Clipboard

	state struct {
		set     palette.Set
		row     int
		col     int
		editing bool
		err     error
	}

	ui struct {
		width  int
		input  textinput.Model
		keys   KeyMap
		notice *components.Notice
		pulse  *components.Pulse
	}

	log logger.Logger
}

// NewModel creates the page in editing mode and generates the first set from seed
func NewModel(seed string, cb clipboard.Clipboard, noticeDuration time.Duration, log logger.Logger) Model {
	m := Model{
		clipboard: cb,
		log:       log.WithComponent("SINGLE"),
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "#845EC2"
	input.CharLimit = components.InputCharLimit
	input.Width = components.InputWidth
	input.SetValue(seed)
	input.Focus()

	m.ui.input = input
	m.ui.keys = DefaultKeyMap()
	m.ui.notice = components.NewNotice(noticeDuration)
	m.ui.pulse = components.NewPulse()
	m.state.editing = true

	return m.generate()
}

// Set returns the palettes currently on screen
func (m Model) Set() palette.Set {
	return m.state.set
}

// Editing reports whether the seed field has focus
func (m Model) Editing() bool {
	return m.state.editing
}

// Err returns the parse error of the last generate, if any
func (m Model) Err() error {
	return m.state.err
}

// Selected returns the row and column under the cursor
func (m Model) Selected() (int, int) {
	return m.state.row, m.state.col
}

// Notice exposes the copy notice for rendering and tests
func (m Model) Notice() *components.Notice {
	return m.ui.notice
}

// generate derives a new set from the seed field; on failure the previous set is kept
func (m Model) generate() Model {
	seed := m.ui.input.Value()

	set, err := palette.SingleFromText(seed)
	if err != nil {
		m.state.err = err
		m.log.Warn().Err(err).Str("seed", seed).Msg("Seed rejected")

		return m
	}

	m.state.set = set
	m.state.err = nil
	m.clampSelection()

	m.log.Debug().Str("seed", seed).Int("palettes", len(set)).Msg("Generated palettes")

	return m
}

func (m *Model) clampSelection() {
	if len(m.state.set) == 0 {
		m.state.row, m.state.col = 0, 0
		return
	}

	m.state.row = clamp(m.state.row, 0, len(m.state.set)-1)
	m.state.col = clamp(m.state.col, 0, len(m.state.set[m.state.row].Colors)-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
