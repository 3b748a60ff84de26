package config

import "time"

// app constants
const (
	AppName = "swatch"
	Version = "0.1.0"

	ConfigFile = "swatch.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "SWATCH"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// seed constants
const (
	DefaultSeed          = "#845EC2"
	DefaultGradientStart = "#845EC2"
	DefaultGradientEnd   = "#2196F3"
)

// ui constants
const (
	RouteSingle   = "/"
	RouteGradient = "/gradient"

	DefaultNoticeDuration = 2 * time.Second
)

// clipboard constants
const (
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
	ClipboardNone   = "none"

	DefaultClipboardMode = ClipboardSystem
)
