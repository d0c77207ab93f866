package bootstrap

import (
	"deskbooker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MetricsModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
