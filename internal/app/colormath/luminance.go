package colormath

// ForegroundThreshold splits backgrounds into dark (white text) and light (black text)
const ForegroundThreshold = 0.5

// RelativeLuminance returns the WCAG relative luminance of c in [0,1]
func RelativeLuminance(c Color) float64 {
	r, g, b := c.colorful().LinearRgb()

	return clamp01(0.2126*r + 0.7152*g + 0.0722*b)
}

// Foreground picks a legible text color for a swatch filled with c
func Foreground(c Color) Color {
	if RelativeLuminance(c) < ForegroundThreshold {
		return White
	}

	return Black
}
