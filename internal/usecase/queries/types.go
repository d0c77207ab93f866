package queries

import (
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/domain/desk"
)

// Read models (DTO for read side)
type RoomView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	NumberOfDesks int    `json:"number_of_desks"`
}

type DeskView struct {
	ID                  int64  `json:"id"`
	RoomID              int64  `json:"room"`
	DeskNumber          int    `json:"desk_number"`
	LocationDescription string `json:"location_description"`
	IsActive            bool   `json:"is_active"`
}

type BookingView struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user"`
	UserName   string    `json:"user_username"`
	DeskID     int64     `json:"desk"`
	DeskNumber int       `json:"desk_number"`
	RoomID     int64     `json:"room"`
	RoomName   string    `json:"room_name"`
	Date       string    `json:"date"`
	Period     string    `json:"period"`
	IsMine     bool      `json:"is_mine"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingCounts struct {
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
	Today    int `json:"today"`
	Total    int `json:"total"`
}

type LayoutView struct {
	RoomID         int64  `json:"room"`
	Version        int    `json:"version"`
	CanvasWidth    int    `json:"canvas_width"`
	CanvasHeight   int    `json:"canvas_height"`
	LayoutJSON     []byte `json:"layout_json"`
	HasDeskObjects bool   `json:"has_desk_objects"`
}

// AvailabilityView is the derived desk-status picture for one
// (room, date, period) key. Valid only for that key; it must be
// recomputed whenever any part of the key changes.
type AvailabilityView struct {
	RoomID         int64
	Date           booking.Date
	Period         booking.Period
	TotalDesks     int
	AvailableDesks int
	BookedDesks    int
	FreeDeskIDs    []int64
	Statuses       map[int64]desk.Status
	StatusesByNum  map[int]desk.Status
	Details        map[int64]*booking.DeskBookingDetail
}

func ViewFromBooking(b *booking.Booking, actor booking.Actor) *BookingView {
	return &BookingView{
		ID:         b.ID(),
		UserID:     b.UserID(),
		UserName:   b.UserName(),
		DeskID:     b.DeskID(),
		DeskNumber: b.DeskNumber(),
		RoomID:     b.RoomID(),
		RoomName:   b.RoomName(),
		Date:       b.Date().String(),
		Period:     b.Period().String(),
		IsMine:     b.IsOwnedBy(actor),
		CreatedAt:  b.CreatedAt(),
	}
}
