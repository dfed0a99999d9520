package config

import "go.uber.org/fx"

// Module exposes configuration loading to the fx container.
var Module = fx.Provide(Load)
