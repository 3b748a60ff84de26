package ui

import (
	"go.uber.org/fx"

	"swatch/internal/app/ui/navigation"
	"swatch/internal/app/ui/wire"
)

// Module provides the fx dependency injection options for the ui package
var Module = fx.Options(
	navigation.Module,
	wire.Module,
)
