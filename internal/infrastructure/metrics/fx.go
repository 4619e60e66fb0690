package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides metrics for fx DI
var Module = fx.Module("metrics",
	fx.Provide(
		prometheus.NewRegistry,
		func(reg *prometheus.Registry) *Metrics {
			return NewMetrics(reg)
		},
	),
)
