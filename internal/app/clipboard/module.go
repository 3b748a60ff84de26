package clipboard

import "go.uber.org/fx"

// Module provides the clipboard selected by configuration
var Module = fx.Options(
	fx.Provide(New),
)
