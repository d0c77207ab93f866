package components

import (
	"log/slog"

	"deskbooker/internal/pkg/clock"
	"deskbooker/internal/pkg/config"
	"deskbooker/internal/usecase/commands"
	"deskbooker/internal/usecase/mapsession"
	"deskbooker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		commands.NewBookingCommands,
		NewMapSessionFactory,
	),
)

func NewMapSessionFactory(q queries.AvailabilityQueries, cfg config.Config, logger *slog.Logger) *mapsession.Factory {
	return mapsession.NewFactory(q, cfg.Availability.FetchTimeout, logger)
}
