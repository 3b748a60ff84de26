package gradient

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"swatch/internal/app/clipboard"
	"swatch/internal/app/colormath"
	"swatch/internal/app/errors"
	"swatch/internal/app/palette"
	"swatch/internal/app/ui/components"
	"swatch/internal/config/logger"
)

const testNoticeDuration = 200 * time.Millisecond

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Debug()
	mockLog.EXPECT().Debug().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Warn().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Error().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()

	return mockLog
}

func newTestModel(t *testing.T, start, end string) (Model, *clipboard.MockClipboard) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cb := clipboard.NewMockClipboard(ctrl)

	return NewModel(start, end, cb, testNoticeDuration, newTestLogger(ctrl)), cb
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func Test_NewModel(t *testing.T) {
	m, _ := newTestModel(t, "#845EC2", "#2196F3")

	assert.True(t, m.Editing())
	assert.NoError(t, m.Err())
	assert.Equal(t, fieldStart, m.Focused())
	require.Len(t, m.Set(), 4)

	kinds := []palette.Kind{palette.KindLinear, palette.KindMidpoint, palette.KindMultiStop, palette.KindTone}
	for i, p := range m.Set() {
		assert.Equal(t, kinds[i], p.Kind)
		assert.Len(t, p.Colors, 5)
	}

	assert.Equal(t, "#845ec2", m.Set()[0].Colors[0].Hex())
	assert.Equal(t, "#2196f3", m.Set()[0].Colors[4].Hex())
}

func Test_NewModel_InvalidSeed(t *testing.T) {
	m, _ := newTestModel(t, "#845EC2", "bogus")

	assert.Empty(t, m.Set())
	assert.True(t, errors.Is(m.Err(), errors.ErrInvalidColor))

	var parseErr *colormath.ParseError
	require.True(t, errors.As(m.Err(), &parseErr))
	assert.Equal(t, "bogus", parseErr.Input)
	assert.Contains(t, m.View(), "bogus")
}

func Test_Update_FieldFocus(t *testing.T) {
	m, _ := newTestModel(t, "#845EC2", "#2196F3")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, fieldEnd, m.Focused())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, fieldStart, m.Focused())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, fieldEnd, m.Focused())

	m, _ = m.Update(runes("j"))
	assert.Equal(t, fieldEnd, m.Focused())
	assert.Equal(t, "#2196F3j", m.ui.inputs[fieldEnd].Value())
	assert.Equal(t, "#845EC2", m.ui.inputs[fieldStart].Value())
}

func Test_Update_Generate(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		wantEditing bool
		wantFirst   string
		wantLast    string
		wantErr     bool
	}{
		{name: "Valid seeds", start: "#000000", end: "#ffffff", wantFirst: "#000000", wantLast: "#ffffff"},
		{name: "CSS functions", start: "rgb(255, 0, 0)", end: "hsl(240, 100%, 50%)", wantFirst: "#ff0000", wantLast: "#0000ff"},
		{name: "Invalid end keeps previous gradients", start: "#000000", end: "nope", wantEditing: true, wantFirst: "#845ec2", wantLast: "#2196f3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, "#845EC2", "#2196F3")
			before := m.Set()

			m.ui.inputs[fieldStart].SetValue(tt.start)
			m.ui.inputs[fieldEnd].SetValue(tt.end)
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.wantEditing, m.Editing())
			require.Len(t, m.Set(), 4)
			assert.Equal(t, tt.wantFirst, m.Set()[0].Colors[0].Hex())
			assert.Equal(t, tt.wantLast, m.Set()[0].Colors[4].Hex())

			if tt.wantErr {
				assert.True(t, errors.Is(m.Err(), errors.ErrInvalidColor))
				assert.Equal(t, before, m.Set())
			} else {
				assert.NoError(t, m.Err())
			}
		})
	}
}

func Test_Update_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{name: "Up at top stays", keys: []tea.KeyMsg{{Type: tea.KeyUp}}, want: 0},
		{name: "Down moves", keys: []tea.KeyMsg{{Type: tea.KeyDown}, runes("j")}, want: 2},
		{name: "Down stops at last gradient", keys: []tea.KeyMsg{runes("j"), runes("j"), runes("j"), runes("j")}, want: 3},
		{name: "Left and right move too", keys: []tea.KeyMsg{runes("l"), runes("l"), runes("h")}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, "#845EC2", "#2196F3")
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			require.False(t, m.Editing())

			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}

			assert.Equal(t, tt.want, m.Selected())
		})
	}
}

func Test_Update_Copy(t *testing.T) {
	tests := []struct {
		name      string
		writeErr  error
		wantState string
		wantText  string
	}{
		{name: "Copied", wantState: components.NoticeCopied, wantText: "copied!"},
		{
			name:      "Failing clipboard",
			writeErr:  &clipboard.ClipboardError{Mode: "none", Err: errors.ErrClipboardUnsupported},
			wantState: components.NoticeFailed,
			wantText:  "copy failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cb := newTestModel(t, "#845EC2", "#2196F3")
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

			before := m.Set()
			cb.EXPECT().Write(palette.GradientCSS(m.Set()[1])).Return(tt.writeErr)

			m, cmd := m.Update(runes("c"))
			require.NotNil(t, cmd)
			assert.Equal(t, components.NoticeCopying, m.Notice().State())

			m, _ = m.Update(cmd())

			assert.Equal(t, tt.wantState, m.Notice().State())
			assert.Equal(t, components.Target{Row: 1}, m.Notice().Target())
			assert.Contains(t, m.View(), tt.wantText)
			assert.Equal(t, before, m.Set())
		})
	}
}

func Test_Update_StaleCopyResultIgnored(t *testing.T) {
	m, cb := newTestModel(t, "#845EC2", "#2196F3")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	cb.EXPECT().Write(gomock.Any()).Return(nil).Times(2)

	m, first := m.Update(runes("c"))
	m, _ = m.Update(runes("j"))
	m, second := m.Update(runes("c"))

	m, _ = m.Update(first())
	assert.Equal(t, components.NoticeCopying, m.Notice().State())

	m, _ = m.Update(second())
	assert.Equal(t, components.NoticeCopied, m.Notice().State())
	assert.Equal(t, components.Target{Row: 1}, m.Notice().Target())
}

func Test_Update_NoticeExpires(t *testing.T) {
	m, cb := newTestModel(t, "#845EC2", "#2196F3")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	cb.EXPECT().Write(gomock.Any()).Return(nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())
	require.True(t, m.Notice().Active())

	m, _ = m.Update(components.TickMsg{})
	m, _ = m.Update(components.TickMsg{})

	assert.False(t, m.Notice().Active())
}

func Test_Selection(t *testing.T) {
	m, _ := newTestModel(t, "#845EC2", "#2196F3")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	top, bottom := m.Selection()
	assert.Equal(t, 4, top)
	assert.Equal(t, 8, bottom)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	top, bottom = m.Selection()
	assert.Equal(t, 10, top)
	assert.Equal(t, 14, bottom)
}

func Test_View(t *testing.T) {
	m, _ := newTestModel(t, "#845EC2", "#2196F3")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()

	assert.Contains(t, view, "Start")
	assert.Contains(t, view, "End")
	assert.Contains(t, view, "Linear")
	assert.Contains(t, view, "Midpoint")
	assert.Contains(t, view, "Multi-stop")
	assert.Contains(t, view, "Tone")
	assert.Contains(t, view, "#845ec2")
	assert.Contains(t, view, "#2196f3")
}

func Test_HelpKeys(t *testing.T) {
	m, _ := newTestModel(t, "#845EC2", "#2196F3")
	assert.Len(t, m.HelpKeys(), 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.HelpKeys(), 4)
}
