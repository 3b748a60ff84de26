package components

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseOn  = "●"
	pulseOff = "○"

	// Animation timing derived from UI tick rate
	pulseFPS = UITicksPerSecond

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// Ticks the marker is pulled toward full before it is released
	pulseHoldTicks = 4

	// Position above which the marker renders filled
	pulseFrameThreshold = 0.5

	// Position and velocity below which the spring counts as settled
	pulseRestThreshold = 0.02

	pulsePositionFull  = 1.0
	pulsePositionEmpty = 0.0
)

// Pulse animates the marker next to a freshly copied swatch using spring physics
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
}

// NewPulse creates an idle pulse animator
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start restarts the animation from empty toward full
func (p *Pulse) Start() {
	p.active = true
	p.position = pulsePositionEmpty
	p.velocity = 0
	p.target = pulsePositionFull
	p.tickCount = 0
}

// Stop ends the animation and resets to empty state
func (p *Pulse) Stop() {
	p.active = false
	p.position = pulsePositionEmpty
	p.velocity = 0
	p.target = pulsePositionEmpty
	p.tickCount = 0
}

// Update advances the animation (called on each UI tick)
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.tickCount++
	if p.tickCount >= pulseHoldTicks {
		p.target = pulsePositionEmpty
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)

	if p.target == pulsePositionEmpty && math.Abs(p.position) < pulseRestThreshold && math.Abs(p.velocity) < pulseRestThreshold {
		p.Stop()
	}
}

// Frame returns the current marker glyph, or nothing while idle
func (p *Pulse) Frame() string {
	if !p.active {
		return ""
	}

	if p.position < pulseFrameThreshold {
		return pulseOff
	}

	return pulseOn
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is currently running
func (p *Pulse) IsActive() bool {
	return p.active
}
