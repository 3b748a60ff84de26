package colormath

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStops is the number of rendered stops in every gradient palette
const GradientStops = 5

// LightnessStep is the L* delta of one darken/brighten unit on go-colorful's 0..1 scale
const LightnessStep = 0.18

// Mix ratios used by the derived gradients
const (
	MidpointRatio  = 0.5
	FirstStopRatio = 0.3
	LastStopRatio  = 0.7
)

// Darken lowers CIE L* by units steps, keeping a* and b*
func Darken(c Color, units float64) Color {
	return shiftLightness(c, -units*LightnessStep)
}

// Brighten raises CIE L* by units steps, keeping a* and b*
func Brighten(c Color, units float64) Color {
	return shiftLightness(c, units*LightnessStep)
}

func shiftLightness(c Color, delta float64) Color {
	l, a, b := c.Lab()

	return fromColorful(colorful.Lab(math.Max(0, l+delta), a, b))
}

// Mix blends a toward b by ratio t in linear-light RGB.
// Ratios at or beyond the ends return the endpoint itself.
func Mix(a, b Color, t float64) Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}

	return fromColorful(a.colorful().BlendLinearRgb(b.colorful(), t))
}

// Scale returns n evenly spaced colors along the control points, interpolated
// piecewise in CIE L*a*b*. The control points are spread evenly over [0,1], so
// the first and last stops are exactly the first and last controls.
func Scale(controls Palette, n int) Palette {
	if n <= 0 || len(controls) == 0 {
		return Palette{}
	}

	out := make(Palette, n)
	if n == 1 || len(controls) == 1 {
		for i := range out {
			out[i] = controls[0]
		}

		return out
	}

	segments := float64(len(controls) - 1)

	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = at(controls, t*segments)
	}

	return out
}

// at interpolates the control points at position p in [0, len(controls)-1]
func at(controls Palette, p float64) Color {
	last := len(controls) - 1

	switch {
	case p <= 0:
		return controls[0]
	case p >= float64(last):
		return controls[last]
	}

	k := int(math.Floor(p))
	frac := p - float64(k)

	if frac == 0 {
		return controls[k]
	}

	return fromColorful(controls[k].colorful().BlendLab(controls[k+1].colorful(), frac))
}

// LinearGradient returns five evenly spaced stops from a to b inclusive
func LinearGradient(a, b Color) Palette {
	return Scale(Palette{a, b}, GradientStops)
}

// MidpointGradient interpolates through the mix of a and b at ratio 0.5
func MidpointGradient(a, b Color) Palette {
	return Scale(Palette{a, Mix(a, b, MidpointRatio), b}, GradientStops)
}

// MultiStopGradient interpolates through the mixes of a and b at 0.3 and 0.7
func MultiStopGradient(a, b Color) Palette {
	return Scale(Palette{
		a,
		Mix(a, b, FirstStopRatio),
		Mix(a, b, LastStopRatio),
		b,
	}, GradientStops)
}

// ToneGradient runs from a brightened by one unit to b darkened by one unit
func ToneGradient(a, b Color) Palette {
	return Scale(Palette{Brighten(a, 1), Darken(b, 1)}, GradientStops)
}
