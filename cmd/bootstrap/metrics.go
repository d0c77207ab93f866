package bootstrap

import (
	"deskbooker/internal/pkg/config"
	"deskbooker/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

func NewMetrics(cfg config.Config) *metrics.Metrics {
	return metrics.New(cfg.Metrics.ServiceName)
}
