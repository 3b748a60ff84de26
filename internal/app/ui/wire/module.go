package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"swatch/internal/app/clipboard"
	"swatch/internal/app/ui/gradient"
	"swatch/internal/app/ui/navigation"
	"swatch/internal/app/ui/shell"
	"swatch/internal/app/ui/single"
	"swatch/internal/config"
	"swatch/internal/config/logger"
)

// Options override the configured start page and seeds; empty fields keep the config values
type Options struct {
	Route string
	Seed  string
	Start string
	End   string
}

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context, opts Options) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Clipboard clipboard.Clipboard
	Navigator navigation.Navigator
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, opts Options) (*tea.Program, error) {
		cfg := params.Config

		route, err := navigation.ParseRoute(pick(opts.Route, cfg.UI.Route))
		if err != nil {
			return nil, err
		}

		params.Navigator.SwitchTo(route)

		s := single.NewModel(
			pick(opts.Seed, cfg.Seeds.Single),
			params.Clipboard,
			cfg.Notice.Duration,
			params.Logger,
		)

		g := gradient.NewModel(
			pick(opts.Start, cfg.Seeds.Start),
			pick(opts.End, cfg.Seeds.End),
			params.Clipboard,
			cfg.Notice.Duration,
			params.Logger,
		)

		model := shell.NewModel(params.Navigator, s, g, params.Logger)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Str("route", route.String()).Msg("TUI: Program created via factory")

		return p, nil
	}
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}

	return fallback
}
