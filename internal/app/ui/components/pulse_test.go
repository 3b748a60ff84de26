package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func Test_NewPulse(t *testing.T) {
	p := NewPulse()

	assert.NotNil(t, p)
	assert.False(t, p.IsActive())
	assert.Empty(t, p.Frame())
}

func Test_Pulse_Start(t *testing.T) {
	p := NewPulse()
	p.Start()

	assert.True(t, p.IsActive())
	assert.Equal(t, pulseOff, p.Frame())
}

func Test_Pulse_Stop(t *testing.T) {
	p := NewPulse()
	p.Start()
	p.Update()
	p.Stop()

	assert.False(t, p.IsActive())
	assert.Empty(t, p.Frame())
	assert.Equal(t, pulsePositionEmpty, p.position)
}

func Test_Pulse_Update_WhenInactive(t *testing.T) {
	p := NewPulse()
	p.Update()

	assert.False(t, p.IsActive())
	assert.Equal(t, 0, p.tickCount)
}

func Test_Pulse_RisesThenSettles(t *testing.T) {
	p := NewPulse()
	p.Start()

	sawFull := false
	ticks := 0

	for p.IsActive() && ticks < 200 {
		p.Update()
		ticks++

		if p.Frame() == pulseOn {
			sawFull = true
		}
	}

	assert.True(t, sawFull, "marker should fill while held")
	assert.False(t, p.IsActive(), "pulse should settle on its own")
	assert.Greater(t, ticks, pulseHoldTicks)
}

func Test_Pulse_Restart(t *testing.T) {
	p := NewPulse()
	p.Start()

	for i := 0; i < pulseHoldTicks+2; i++ {
		p.Update()
	}

	p.Start()

	assert.Equal(t, 0, p.tickCount)
	assert.Equal(t, pulsePositionFull, p.target)
}

func Test_Pulse_Render(t *testing.T) {
	p := NewPulse()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))

	assert.Empty(t, p.Render(style))

	p.Start()
	assert.Contains(t, p.Render(style), pulseOff)
}
