package palette

import (
	"fmt"
	"strings"

	"swatch/internal/app/colormath"
)

// Kind identifies the derivation method that produced a palette
type Kind int

// Single color kinds come first, gradient kinds after
const (
	KindMonochromatic Kind = iota
	KindComplementary
	KindTriadic
	KindAnalogous
	KindLinear
	KindMidpoint
	KindMultiStop
	KindTone
)

var kindNames = map[Kind]string{
	KindMonochromatic: "monochromatic",
	KindComplementary: "complementary",
	KindTriadic:       "triadic",
	KindAnalogous:     "analogous",
	KindLinear:        "linear",
	KindMidpoint:      "midpoint",
	KindMultiStop:     "multi-stop",
	KindTone:          "tone",
}

var kindTitles = map[Kind]string{
	KindMonochromatic: "Monochromatic",
	KindComplementary: "Complementary",
	KindTriadic:       "Triadic",
	KindAnalogous:     "Analogous",
	KindLinear:        "Linear",
	KindMidpoint:      "Midpoint",
	KindMultiStop:     "Multi-stop",
	KindTone:          "Tone",
}

// String returns the machine-readable name used by generate output
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Title returns the human label shown above the palette
func (k Kind) Title() string {
	if title, ok := kindTitles[k]; ok {
		return title
	}

	return k.String()
}

// IsGradient reports whether the kind belongs to the two-seed gradient set
func (k Kind) IsGradient() bool {
	return k >= KindLinear
}

// Palette is a named, ordered list of derived colors
type Palette struct {
	Kind   Kind
	Colors colormath.Palette
}

// Hexes returns the hex strings of the palette colors in order
func (p Palette) Hexes() []string {
	return p.Colors.Hexes()
}

// Set is the fixed-order collection of palettes produced by one generate action
type Set []Palette

// Single derives the four single-seed palettes
func Single(seed colormath.Color) Set {
	return Set{
		{Kind: KindMonochromatic, Colors: colormath.Monochromatic(seed)},
		{Kind: KindComplementary, Colors: colormath.Complementary(seed)},
		{Kind: KindTriadic, Colors: colormath.Triadic(seed)},
		{Kind: KindAnalogous, Colors: colormath.Analogous(seed)},
	}
}

// Gradient derives the four five-stop gradients between start and end
func Gradient(start, end colormath.Color) Set {
	return Set{
		{Kind: KindLinear, Colors: colormath.LinearGradient(start, end)},
		{Kind: KindMidpoint, Colors: colormath.MidpointGradient(start, end)},
		{Kind: KindMultiStop, Colors: colormath.MultiStopGradient(start, end)},
		{Kind: KindTone, Colors: colormath.ToneGradient(start, end)},
	}
}

// SingleFromText parses the seed and derives the single color set
func SingleFromText(seed string) (Set, error) {
	c, err := colormath.Parse(seed)
	if err != nil {
		return nil, err
	}

	return Single(c), nil
}

// GradientFromText parses both seeds and derives the gradient set.
// The first seed that fails to parse is reported.
func GradientFromText(start, end string) (Set, error) {
	a, err := colormath.Parse(start)
	if err != nil {
		return nil, err
	}

	b, err := colormath.Parse(end)
	if err != nil {
		return nil, err
	}

	return Gradient(a, b), nil
}

// SwatchText is the clipboard text for a single swatch
func SwatchText(c colormath.Color) string {
	return c.Hex()
}

// GradientCSS is the clipboard text for a gradient palette
func GradientCSS(p Palette) string {
	return fmt.Sprintf("background: linear-gradient(to right, %s);", strings.Join(p.Hexes(), ", "))
}

// Entry is the serializable form of a palette
type Entry struct {
	Name   string   `json:"name"          yaml:"name"`
	Title  string   `json:"title"         yaml:"title"`
	Colors []string `json:"colors"        yaml:"colors"`
	CSS    string   `json:"css,omitempty" yaml:"css,omitempty"`
}

// Entries converts the set for JSON and YAML output; gradients carry their CSS string
func (s Set) Entries() []Entry {
	entries := make([]Entry, 0, len(s))

	for _, p := range s {
		entry := Entry{
			Name:   p.Kind.String(),
			Title:  p.Kind.Title(),
			Colors: p.Hexes(),
		}

		if p.Kind.IsGradient() {
			entry.CSS = GradientCSS(p)
		}

		entries = append(entries, entry)
	}

	return entries
}
