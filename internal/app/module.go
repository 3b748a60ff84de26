package app

import (
	"go.uber.org/fx"

	"swatch/internal/app/cli"
	"swatch/internal/app/clipboard"
	"swatch/internal/app/generator"
	"swatch/internal/app/ui"
)

// Module wires every package the commands depend on
var Module = fx.Options(
	cli.Module,
	clipboard.Module,
	generator.Module,
	ui.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
