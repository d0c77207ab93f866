package components

import (
	"deskbooker/internal/infra"
	"deskbooker/internal/infra/readstore"
	"deskbooker/internal/infra/writestore"
	"deskbooker/internal/usecase/commands"
	"deskbooker/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			writestore.NewBookingWriteStore,
			fx.As(new(commands.BookingWriteRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
