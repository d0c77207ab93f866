package infra

import "deskbooker/internal/domain/booking"

// ExistingBooking describes the booking a rejected request clashed
// with. Decoded once at the store boundary so call sites never sniff
// error payload shapes.
type ExistingBooking struct {
	Date       string         `json:"date"`
	Period     booking.Period `json:"period"`
	DeskNumber int            `json:"desk"`
	RoomID     int64          `json:"room"`
	RoomName   string         `json:"room_name"`
}

// ConflictError is the tagged variant for store-level booking
// rejections. Existing may be nil when the store cannot say which
// booking clashed (e.g. a bare unique-constraint violation).
type ConflictError struct {
	Message  string
	Existing *ExistingBooking
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string, existing *ExistingBooking) *ConflictError {
	return &ConflictError{Message: message, Existing: existing}
}
