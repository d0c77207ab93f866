package commands

import (
	"context"

	"deskbooker/internal/domain/booking"
)

type BookingWriteRepo interface {
	// Create persists a new booking and returns it with identity and
	// denormalized desk/room data filled in. A *infra.ConflictError is
	// returned when the slot clashes with an existing booking.
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	Delete(ctx context.Context, id int64) error
}
