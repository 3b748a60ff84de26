package colormath

import "github.com/lucasb-eyer/go-colorful"

// Harmony rotation angles in degrees
const (
	ComplementaryAngle = 180
	TriadicAngle       = 120
	AnalogousAngle     = 30
)

// MonochromaticDarkenUnits is how far the monochromatic scale travels toward black
const MonochromaticDarkenUnits = 2

// HueRotate shifts the HSL hue by degrees, keeping saturation and lightness
func HueRotate(c Color, degrees float64) Color {
	h, s, l := c.HSL()

	return fromColorful(colorful.Hsl(wrapHue(h+degrees), s, l))
}

// Monochromatic returns five evenly spaced steps from c down to c darkened by two units
func Monochromatic(c Color) Palette {
	return Scale(Palette{c, Darken(c, MonochromaticDarkenUnits)}, GradientStops)
}

// Complementary returns c and its opposite hue
func Complementary(c Color) Palette {
	return Palette{c, HueRotate(c, ComplementaryAngle)}
}

// Triadic returns c and the two hues a third of the wheel away
func Triadic(c Color) Palette {
	return Palette{
		c,
		HueRotate(c, TriadicAngle),
		HueRotate(c, 2*TriadicAngle),
	}
}

// Analogous returns c and its two neighbours 30 degrees either side
func Analogous(c Color) Palette {
	return Palette{
		c,
		HueRotate(c, AnalogousAngle),
		HueRotate(c, -AnalogousAngle),
	}
}
