package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatch/internal/app/colormath"
	"swatch/internal/app/errors"
)

func Test_Single(t *testing.T) {
	seed := colormath.MustParse("#845EC2")
	set := Single(seed)

	require.Len(t, set, 4)
	assert.Equal(t, KindMonochromatic, set[0].Kind)
	assert.Equal(t, KindComplementary, set[1].Kind)
	assert.Equal(t, KindTriadic, set[2].Kind)
	assert.Equal(t, KindAnalogous, set[3].Kind)

	assert.Len(t, set[0].Colors, 5)
	assert.Len(t, set[1].Colors, 2)
	assert.Len(t, set[2].Colors, 3)
	assert.Len(t, set[3].Colors, 3)

	assert.Equal(t, colormath.HueRotate(seed, 180), set[1].Colors[1])
}

func Test_Gradient(t *testing.T) {
	start := colormath.MustParse("#845EC2")
	end := colormath.MustParse("#2196F3")
	set := Gradient(start, end)

	require.Len(t, set, 4)

	kinds := []Kind{KindLinear, KindMidpoint, KindMultiStop, KindTone}
	for i, p := range set {
		assert.Equal(t, kinds[i], p.Kind)
		assert.Len(t, p.Colors, colormath.GradientStops)
	}

	assert.Equal(t, start, set[0].Colors[0])
	assert.Equal(t, end, set[0].Colors[4])
}

func Test_SingleFromText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Hex seed", input: "#845EC2"},
		{name: "Named seed", input: "teal"},
		{name: "Invalid seed", input: "not-a-color", wantErr: true},
		{name: "Empty seed", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := SingleFromText(tt.input)

			if tt.wantErr {
				assert.Nil(t, set)

				var parseErr *colormath.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, tt.input, parseErr.Input)

				return
			}

			require.NoError(t, err)
			assert.Len(t, set, 4)
		})
	}
}

func Test_GradientFromText(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		badInput string
	}{
		{name: "Both valid", start: "#845EC2", end: "#2196F3"},
		{name: "Invalid start", start: "nope", end: "#2196F3", badInput: "nope"},
		{name: "Invalid end", start: "#845EC2", end: "#zzzzzz", badInput: "#zzzzzz"},
		{name: "Both invalid reports start", start: "x", end: "y", badInput: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := GradientFromText(tt.start, tt.end)

			if tt.badInput != "" {
				assert.Nil(t, set)
				assert.True(t, errors.Is(err, errors.ErrInvalidColor))

				var parseErr *colormath.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, tt.badInput, parseErr.Input)

				return
			}

			require.NoError(t, err)
			assert.Len(t, set, 4)
		})
	}
}

func Test_SwatchText(t *testing.T) {
	assert.Equal(t, "#845ec2", SwatchText(colormath.MustParse("#845EC2")))
}

func Test_GradientCSS(t *testing.T) {
	p := Palette{
		Kind:   KindLinear,
		Colors: colormath.Palette{colormath.Black, colormath.White},
	}

	assert.Equal(t, "background: linear-gradient(to right, #000000, #ffffff);", GradientCSS(p))
}

func Test_Kind_Labels(t *testing.T) {
	tests := []struct {
		kind     Kind
		name     string
		title    string
		gradient bool
	}{
		{kind: KindMonochromatic, name: "monochromatic", title: "Monochromatic"},
		{kind: KindAnalogous, name: "analogous", title: "Analogous"},
		{kind: KindMultiStop, name: "multi-stop", title: "Multi-stop", gradient: true},
		{kind: KindTone, name: "tone", title: "Tone", gradient: true},
		{kind: Kind(42), name: "kind(42)", title: "kind(42)", gradient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.title, tt.kind.Title())
			assert.Equal(t, tt.gradient, tt.kind.IsGradient())
		})
	}
}

func Test_Set_Entries(t *testing.T) {
	single := Single(colormath.MustParse("#845EC2")).Entries()

	require.Len(t, single, 4)
	assert.Equal(t, "monochromatic", single[0].Name)
	assert.Equal(t, "Monochromatic", single[0].Title)
	assert.Equal(t, "#845ec2", single[0].Colors[0])
	assert.Empty(t, single[0].CSS)

	gradient := Gradient(colormath.MustParse("#845EC2"), colormath.MustParse("#2196F3")).Entries()

	require.Len(t, gradient, 4)
	assert.Equal(t, "multi-stop", gradient[2].Name)
	assert.Equal(t, "background: linear-gradient(to right, #845ec2, #786dce, #677bda, #5089e7, #2196f3);", gradient[0].CSS)
}
