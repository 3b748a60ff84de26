//go:generate mockgen -source=clipboard.go -destination=clipboard_mock.go -package=clipboard

package clipboard

import (
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"swatch/internal/app/errors"
	"swatch/internal/config"
	"swatch/internal/config/logger"
)

// Clipboard writes text to wherever the user pastes from
type Clipboard interface {
	Write(text string) error
}

// ClipboardError reports a failed write together with the mode that attempted it
type ClipboardError struct {
	Mode string
	Err  error
}

// Error implements the error interface
func (e *ClipboardError) Error() string {
	return fmt.Sprintf("%s (%s): %v", errors.ErrClipboardWrite, e.Mode, e.Err)
}

// Unwrap exposes both the write sentinel and the underlying cause
func (e *ClipboardError) Unwrap() []error {
	return []error{errors.ErrClipboardWrite, e.Err}
}

// New returns the clipboard selected by clipboard.mode
func New(cfg *config.Config, log logger.Logger) (Clipboard, error) {
	log = log.WithComponent("CLIPBOARD")

	switch cfg.Clipboard.Mode {
	case config.ClipboardSystem:
		return newSystem(log), nil
	case config.ClipboardOSC52:
		return newOSC52(os.Stderr, os.Getenv("TMUX") != "", log), nil
	case config.ClipboardNone:
		return newNone(log), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", errors.ErrUnknownClipboardMode, cfg.Clipboard.Mode)
	}
}

// system uses the platform clipboard tools (pbcopy, xclip, xsel, wl-copy, Windows API)
type system struct {
	write       func(string) error
	unsupported func() bool
	log         logger.Logger
}

func newSystem(log logger.Logger) *system {
	return &system{
		write:       sysclip.WriteAll,
		unsupported: func() bool { return sysclip.Unsupported },
		log:         log,
	}
}

func (c *system) Write(text string) error {
	if c.unsupported() {
		c.log.Warn().Msg("No clipboard utility found")
		return &ClipboardError{Mode: config.ClipboardSystem, Err: errors.ErrClipboardUnsupported}
	}

	if err := c.write(text); err != nil {
		c.log.Error().Err(err).Msg("Failed to write system clipboard")
		return &ClipboardError{Mode: config.ClipboardSystem, Err: err}
	}

	c.log.Debug().Str("text", text).Msg("Copied to system clipboard")

	return nil
}

// osc52Clipboard asks the terminal emulator to set the clipboard, which also works over SSH
type osc52Clipboard struct {
	out  io.Writer
	tmux bool
	log  logger.Logger
}

func newOSC52(out io.Writer, tmux bool, log logger.Logger) *osc52Clipboard {
	return &osc52Clipboard{out: out, tmux: tmux, log: log}
}

func (c *osc52Clipboard) Write(text string) error {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		c.log.Error().Err(err).Msg("Failed to write OSC52 sequence")
		return &ClipboardError{Mode: config.ClipboardOSC52, Err: err}
	}

	c.log.Debug().Str("text", text).Msg("Sent OSC52 sequence")

	return nil
}

// none rejects every write
type none struct {
	log logger.Logger
}

func newNone(log logger.Logger) *none {
	return &none{log: log}
}

func (c *none) Write(text string) error {
	c.log.Debug().Str("text", text).Msg("Clipboard disabled")
	return &ClipboardError{Mode: config.ClipboardNone, Err: errors.ErrClipboardUnsupported}
}
