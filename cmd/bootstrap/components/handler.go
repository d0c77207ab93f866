package components

import (
	"deskbooker/internal/handler"
	"deskbooker/internal/handler/api"
	"deskbooker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewMapHandler,
		middleware.NewIdentityMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
