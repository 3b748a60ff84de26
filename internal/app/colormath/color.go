// Package colormath derives related colors from one or two seed colors.
//
// Every function in this package is pure: identical input always yields identical
// output and nothing is shared between calls. Colors are quantized to 8 bits per
// channel after every derivation, so results compare with ==.
package colormath

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque sRGB color with 8-bit channels
type Color struct {
	R, G, B uint8
}

// Palette is an ordered sequence of colors, rendered left to right
type Palette []Color

// Common colors used for foreground selection
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
)

// FromRGB builds a color from 8-bit channels
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0,1].
// Hue wraps modulo 360 and saturation/lightness are clamped.
func FromHSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(wrapHue(h), clamp01(s), clamp01(l)))
}

// fromColorful clamps a go-colorful color into gamut and quantizes it
func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// colorful converts the color to go-colorful's float representation
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the color as a lowercase #rrggbb string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// HSL returns hue in [0,360) and saturation/lightness in [0,1]
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Lab returns CIE L*a*b* coordinates with L in [0,1]
func (c Color) Lab() (l, a, b float64) {
	return c.colorful().Lab()
}

// LabHue returns the hue angle of the color in the a*b* plane, in degrees
func (c Color) LabHue() float64 {
	_, a, b := c.Lab()
	return wrapHue(math.Atan2(b, a) * 180 / math.Pi)
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff

	return r, g, b, a
}

// Hexes returns the hex strings of every color in the palette
func (p Palette) Hexes() []string {
	hexes := make([]string, len(p))
	for i, c := range p {
		hexes[i] = c.Hex()
	}

	return hexes
}

// wrapHue reduces a hue angle into [0,360)
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	if h >= 360 {
		h = 0
	}

	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
