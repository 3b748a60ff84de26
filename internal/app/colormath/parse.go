package colormath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"swatch/internal/app/errors"
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-f]{3}|[0-9a-f]{6})$`)
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(\s*(-?[\d.]+)(?:deg)?\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*\)$`)
)

// ParseError reports a seed string that is not a recognized color representation
type ParseError struct {
	Input string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", errors.ErrInvalidColor, e.Input)
}

// Unwrap allows errors.Is(err, errors.ErrInvalidColor)
func (e *ParseError) Unwrap() error {
	return errors.ErrInvalidColor
}

// Parse reads a color from hex (#rgb, #rrggbb, with or without #), rgb(r, g, b),
// hsl(h, s%, l%) or a CSS color name
func Parse(s string) (Color, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return Color{}, &ParseError{Input: s}
	}

	if m := hexPattern.FindStringSubmatch(input); m != nil {
		c, err := colorful.Hex("#" + m[1])
		if err != nil {
			return Color{}, &ParseError{Input: s}
		}

		return fromColorful(c), nil
	}

	if m := rgbPattern.FindStringSubmatch(input); m != nil {
		return parseRGB(s, m[1:])
	}

	if m := hslPattern.FindStringSubmatch(input); m != nil {
		return parseHSL(s, m[1:])
	}

	if named, ok := colornames.Map[input]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	return Color{}, &ParseError{Input: s}
}

// MustParse is like Parse but panics on invalid input; meant for constants and tests
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

func parseRGB(input string, parts []string) (Color, error) {
	var channels [3]uint8

	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return Color{}, &ParseError{Input: input}
		}

		channels[i] = uint8(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseHSL(input string, parts []string) (Color, error) {
	var values [3]float64

	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Color{}, &ParseError{Input: input}
		}

		values[i] = v
	}

	if values[1] > 100 || values[2] > 100 {
		return Color{}, &ParseError{Input: input}
	}

	return FromHSL(values[0], values[1]/100, values[2]/100), nil
}
