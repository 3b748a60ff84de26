//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"swatch/internal/app/errors"
	"swatch/internal/app/generator"
	"swatch/internal/app/palette"
	"swatch/internal/app/ui/wire"
	"swatch/internal/config"
	"swatch/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Run(args []string) error
}

// cli represents the command-line interface for the application
type cli struct {
	cfg        *config.Config
	ui         wire.UI
	generator  generator.Generator
	out        io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	ui wire.UI,
	gen generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:        cfg,
		ui:         ui,
		generator:  gen,
		out:        os.Stdout,
		isTerminal: func() bool { return term.IsTerminal(os.Stdout.Fd()) },
		log:        log.WithComponent("CLI"),
	}
}

// Run parses args and executes the selected command
func (c *cli) Run(args []string) error {
	opts, err := Parse(args)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnknownCommand, err)
	}

	switch opts.Type {
	case CommandGenerate:
		return c.handleGenerate(opts)
	case CommandInit:
		return c.handleInit(opts)
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	default:
		return c.handleUI(opts)
	}
}

// handleUI runs the TUI until the user quits
func (c *cli) handleUI(opts *Options) error {
	c.log.Debug().Str("route", opts.Route).Msg("Starting TUI")

	program, err := c.ui(context.Background(), wire.Options{
		Route: opts.Route,
		Seed:  opts.Seed,
		Start: opts.Start,
		End:   opts.End,
	})
	if err != nil {
		return err
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// handleGenerate prints the palettes of --seed, or the gradients of --start and --end
func (c *cli) handleGenerate(opts *Options) error {
	set, err := buildSet(opts)
	if err != nil {
		return err
	}

	color := opts.Format == FormatText && c.isTerminal()

	c.log.Debug().Str("format", opts.Format).Bool("color", color).Int("palettes", len(set)).Msg("Writing palettes")

	return writeSet(c.out, set, opts.Format, color)
}

func buildSet(opts *Options) (palette.Set, error) {
	switch {
	case opts.Seed != "":
		return palette.SingleFromText(opts.Seed)
	case opts.Start != "" && opts.End != "":
		return palette.GradientFromText(opts.Start, opts.End)
	case opts.Start != "" || opts.End != "":
		return nil, fmt.Errorf("%w: gradients need both --start and --end", errors.ErrMissingSeed)
	default:
		return nil, fmt.Errorf("%w: use --seed, or --start with --end", errors.ErrMissingSeed)
	}
}

// handleInit writes the config template
func (c *cli) handleInit(opts *Options) error {
	c.log.Debug().Bool("force", opts.Force).Bool("dry_run", opts.DryRun).Msg("Generating config template")

	return c.generator.Generate(generator.DefaultOptions(), opts.Force, opts.DryRun)
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	_, err := fmt.Fprintln(c.out, RenderTitle())
	return err
}

// handleHelp displays help information
func (c *cli) handleHelp() error {
	_, err := fmt.Fprint(c.out, renderHelp())
	return err
}
