package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidNoticeDuration = errors.New("notice duration must be positive")
	ErrUnknownClipboardMode  = errors.New("unknown clipboard mode")
	ErrUnknownRoute          = errors.New("unknown route")

	ErrInvalidColor = errors.New("invalid color")
	ErrMissingSeed  = errors.New("missing seed color")

	ErrClipboardWrite       = errors.New("clipboard write failed")
	ErrClipboardUnsupported = errors.New("clipboard not supported in this environment")

	ErrUnknownFormat  = errors.New("unknown output format")
	ErrUnknownCommand = errors.New("unknown command")
	ErrFileExists     = errors.New("file already exists")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
