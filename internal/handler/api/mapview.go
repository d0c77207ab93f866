package api

import (
	"errors"
	"net/http"
	"strconv"

	"deskbooker/internal/domain/booking"
	resdto "deskbooker/internal/handler/dto/response"
	"deskbooker/internal/handler/middleware"
	"deskbooker/internal/usecase/mapsession"

	"github.com/gin-gonic/gin"
)

// MapHandler evaluates one interactive-map view per request. The
// client sends its current inputs (room, date, period, optionally a
// desk to select) and gets back the resulting snapshot, so the map
// state machine runs server-side while the client stays stateless.
type MapHandler struct {
	sessions *mapsession.Factory
}

func NewMapHandler(sessions *mapsession.Factory) *MapHandler {
	return &MapHandler{
		sessions: sessions,
	}
}

func (h *MapHandler) GetRoomMap(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	session := h.sessions.NewSession(actor)
	snap := session.SelectRoom(c.Request.Context(), roomID)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := booking.NewDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Query parameter 'date' must be formatted as YYYY-MM-DD",
			})
			return
		}
		snap = session.SetDate(c.Request.Context(), date)
	}

	if periodStr := c.Query("period"); periodStr != "" {
		period := booking.Period(periodStr)
		if !period.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Query parameter 'period' must be one of am, pm, full",
			})
			return
		}
		snap = session.SetPeriod(c.Request.Context(), period)
	}

	if deskStr := c.Query("desk"); deskStr != "" {
		deskID, err := strconv.ParseInt(deskStr, 10, 64)
		if err != nil || deskID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Query parameter 'desk' must be a desk id",
			})
			return
		}
		if err := session.SelectDesk(deskID); err != nil {
			switch {
			case errors.Is(err, mapsession.ErrNotInteractive):
				c.JSON(http.StatusConflict, gin.H{
					"error":    "Map is not interactive in this state",
					"snapshot": resdto.FromMapSnapshot(session.Snapshot(), actor),
				})
			case errors.Is(err, mapsession.ErrDeskNotAvailable):
				c.JSON(http.StatusConflict, gin.H{
					"error":    "Desk is not available for the selected slot",
					"snapshot": resdto.FromMapSnapshot(session.Snapshot(), actor),
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
			return
		}
		snap = session.Snapshot()
	}

	c.JSON(http.StatusOK, resdto.FromMapSnapshot(snap, actor))
}
