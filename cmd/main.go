package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"swatch/internal/app"
	"swatch/internal/app/cli"
	"swatch/internal/config"
	"swatch/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	noUI := isNonInteractive(os.Args[1:])
	application := createApp(cfg, noUI)
	application.Run()
}

// isNonInteractive reports whether args select a command that prints instead of opening the TUI.
// Unparseable args count as non-interactive so the error reaches the terminal.
func isNonInteractive(args []string) bool {
	opts, err := cli.Parse(args)
	if err != nil {
		return true
	}

	return !opts.Interactive()
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, noUI bool) *fx.App {
	var logOutput io.Writer
	if !noUI {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
