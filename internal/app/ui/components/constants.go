package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for notices and animations
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from the tick interval
	UITicksPerSecond = int(time.Second / UITickInterval)

	// TipRotationTicks is how long each footer tip stays on screen
	TipRotationTicks = 8 * UITicksPerSecond
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
	FooterHeight            = 3
	HeaderHeight            = 2
)

// Swatch layout constants
const (
	SwatchWidth       = 11
	SwatchBorderWidth = 2
	SwatchGap         = 1
)

// Gradient bar layout constants
const (
	GradientBarHeight   = 2
	DefaultGradientBar  = 60
	MinGradientBarWidth = 5 * HexLabelWidth
	MaxGradientBarWidth = 120
	GradientBarPadding  = 6
	HexLabelWidth       = 7
)

// Input layout constants
const (
	InputWidth     = 24
	InputCharLimit = 40
)
