package metrics

import (
	"go.uber.org/fx"
)

// Module exposes the metrics registry to the fx graph.
var Module = fx.Provide(New)
