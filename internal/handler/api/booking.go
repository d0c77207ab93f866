package api

import (
	"errors"
	"net/http"
	"strconv"

	"deskbooker/internal/domain/booking"
	reqdto "deskbooker/internal/handler/dto/request"
	resdto "deskbooker/internal/handler/dto/response"
	"deskbooker/internal/handler/middleware"
	"deskbooker/internal/usecase/commands"
	"deskbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands     commands.BookingCommands
	bookingQueries      queries.BookingQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	availabilityQueries queries.AvailabilityQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:     bookingCommands,
		bookingQueries:      bookingQueries,
		availabilityQueries: availabilityQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), actor, req.ToSlot())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIncompleteSelection):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Room, desk, date and period are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(submitStatus(result), resdto.FromSubmitResult(result))
}

func (h *BookingHandler) BulkCreateBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BulkCreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.SubmitBulk(c.Request.Context(), actor, req.ToSlots())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoBookingsProvided):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No bookings provided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(submitStatus(result), resdto.FromSubmitResult(result))
}

// submitStatus maps a submission outcome to one HTTP status. Any
// created booking makes the request a success; a fully rejected batch
// is a conflict when the store reported one, otherwise invalid input.
func submitStatus(result *commands.SubmitResult) int {
	if len(result.Created) > 0 {
		return http.StatusCreated
	}
	for _, e := range result.Errors {
		if e.Existing != nil {
			return http.StatusConflict
		}
	}
	return http.StatusUnprocessableEntity
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), actor, bookingID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You can only cancel your own bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListMyBookings(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) GetMyBookingsCount(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	counts, err := h.bookingQueries.CountMyBookings(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *BookingHandler) GetRoomBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	roomID, err := strconv.ParseInt(c.Query("room"), 10, 64)
	if err != nil || roomID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'room' is required",
		})
		return
	}

	from, err := booking.NewDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'start_date' must be formatted as YYYY-MM-DD",
		})
		return
	}
	to, err := booking.NewDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'end_date' must be formatted as YYYY-MM-DD",
		})
		return
	}

	views, err := h.bookingQueries.ListRoomBookings(c.Request.Context(), actor, roomID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.BookingView{}
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	roomID, err := strconv.ParseInt(c.Query("room"), 10, 64)
	if err != nil || roomID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'room' is required",
		})
		return
	}

	date, err := booking.NewDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'date' must be formatted as YYYY-MM-DD",
		})
		return
	}

	period := booking.Period(c.Query("period"))
	if !period.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'period' must be one of am, pm, full",
		})
		return
	}

	view, err := h.availabilityQueries.RoomAvailability(c.Request.Context(), actor, roomID, date, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	desks, err := h.availabilityQueries.RoomDesks(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view, desks, actor))
}
