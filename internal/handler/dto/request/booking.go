package request

import (
	"deskbooker/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Room   int64  `json:"room" binding:"required"`
	Desk   int64  `json:"desk" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Period string `json:"period" binding:"required,oneof=am pm full"`
}

func (r CreateBookingRequest) ToSlot() commands.SlotRequest {
	return commands.SlotRequest{
		RoomID: r.Room,
		DeskID: r.Desk,
		Date:   r.Date,
		Period: r.Period,
	}
}

type BulkCreateBookingRequest struct {
	Bookings []CreateBookingRequest `json:"bookings" binding:"required"`
}

func (r BulkCreateBookingRequest) ToSlots() []commands.SlotRequest {
	slots := make([]commands.SlotRequest, len(r.Bookings))
	for i, b := range r.Bookings {
		slots[i] = b.ToSlot()
	}
	return slots
}
