package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "deskbooker/internal/handler/dto/response"
	"deskbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomQueries.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RoomResponse, len(rooms))
	for i, rm := range rooms {
		response[i] = resdto.FromRoomView(rm)
	}
	c.JSON(http.StatusOK, response)
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := h.roomQueries.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(room))
}

func (h *RoomHandler) ListDesks(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	desks, err := h.roomQueries.ListDesks(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.DeskResponse, len(desks))
	for i, rm := range desks {
		response[i] = resdto.FromDeskView(rm)
	}
	c.JSON(http.StatusOK, response)
}

func (h *RoomHandler) GetLayout(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}

	l, err := h.roomQueries.GetLayout(c.Request.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLayoutNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room layout not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLayout(l))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id format",
		})
		return 0, false
	}
	return id, true
}
