package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"swatch/internal/app/colormath"
	"swatch/internal/app/errors"
	"swatch/internal/app/palette"
)

// writeSet prints the set in the requested format; colored swatches only when color is set
func writeSet(w io.Writer, set palette.Set, format string, color bool) error {
	switch format {
	case FormatText:
		return writeText(w, set, color)
	case FormatCSS:
		return writeCSS(w, set)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(set.Entries())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(set.Entries()); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: '%s' (must be 'text', 'css', 'json', or 'yaml')", errors.ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, set palette.Set, color bool) error {
	width := 0
	for _, p := range set {
		width = max(width, len(p.Kind.Title()))
	}

	for _, p := range set {
		cells := make([]string, len(p.Colors))
		for i, c := range p.Colors {
			cells[i] = renderCell(c, color)
		}

		name := fmt.Sprintf("%-*s", width, p.Kind.Title())
		if color {
			name = paletteName.Render(name)
		}

		if _, err := fmt.Fprintf(w, "%s  %s\n", name, strings.Join(cells, " ")); err != nil {
			return err
		}
	}

	return nil
}

func renderCell(c colormath.Color, color bool) string {
	if !color {
		return c.Hex()
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colormath.Foreground(c).Hex())).
		Render(" " + c.Hex() + " ")
}

// writeCSS prints custom properties for swatches and background rules for gradients
func writeCSS(w io.Writer, set palette.Set) error {
	for _, p := range set {
		if _, err := fmt.Fprintf(w, "/* %s */\n", p.Kind.Title()); err != nil {
			return err
		}

		if p.Kind.IsGradient() {
			if _, err := fmt.Fprintln(w, palette.GradientCSS(p)); err != nil {
				return err
			}

			continue
		}

		for i, c := range p.Colors {
			if _, err := fmt.Fprintf(w, "--%s-%d: %s;\n", p.Kind, i+1, palette.SwatchText(c)); err != nil {
				return err
			}
		}
	}

	return nil
}
