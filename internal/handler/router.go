package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deskbooker/internal/handler/api"
	"deskbooker/internal/handler/middleware"
	"deskbooker/internal/pkg/config"
	"deskbooker/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	m *metrics.Metrics,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	mapHandler *api.MapHandler,
	identity *middleware.IdentityMiddleware,
) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, roomHandler, bookingHandler, mapHandler, identity)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	mapHandler *api.MapHandler,
	identity *middleware.IdentityMiddleware,
) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(identity.RequireIdentity())
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodGet, Path: "/:id/desks", Handler: roomHandler.ListDesks},
				{Method: http.MethodGet, Path: "/:id/layout", Handler: roomHandler.GetLayout},
				{Method: http.MethodGet, Path: "/:id/map", Handler: mapHandler.GetRoomMap},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetRoomBookings},
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodPost, Path: "/bulk", Handler: bookingHandler.BulkCreateBookings},
				{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/my-bookings", Handler: bookingHandler.GetMyBookings},
				{Method: http.MethodGet, Path: "/my-bookings-count", Handler: bookingHandler.GetMyBookingsCount},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
