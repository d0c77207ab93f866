package queries

import (
	"context"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/pkg/clock"
	"deskbooker/internal/pkg/errs"
)

type BookingViewRepo interface {
	ListForRoomDate(ctx context.Context, roomID int64, date booking.Date) ([]*booking.Booking, error)
	ListForRoomRange(ctx context.Context, roomID int64, from, to booking.Date) ([]*booking.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*booking.Booking, error)
	FreeDeskIDs(ctx context.Context, roomID int64, date booking.Date, period booking.Period) ([]int64, error)
}

type BookingQueries interface {
	ListMyBookings(ctx context.Context, actor booking.Actor) ([]*BookingView, error)
	CountMyBookings(ctx context.Context, actor booking.Actor) (*BookingCounts, error)
	ListRoomBookings(ctx context.Context, actor booking.Actor, roomID int64, from, to booking.Date) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	clock clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clock}
}

func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, actor booking.Actor) ([]*BookingView, error) {
	rows, err := q.repo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return viewsFromBookings(rows, actor), nil
}

func (q *bookingQueriesImpl) CountMyBookings(ctx context.Context, actor booking.Actor) (*BookingCounts, error) {
	rows, err := q.repo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count user bookings")
	}

	today := booking.DateOf(q.clock.Now())
	counts := &BookingCounts{}
	for _, b := range rows {
		switch {
		case b.Date().Equal(today):
			counts.Today++
			counts.Upcoming++
		case b.Date().Before(today):
			counts.Past++
		default:
			counts.Upcoming++
		}
	}
	counts.Total = counts.Upcoming + counts.Past
	return counts, nil
}

func (q *bookingQueriesImpl) ListRoomBookings(ctx context.Context, actor booking.Actor, roomID int64, from, to booking.Date) ([]*BookingView, error) {
	rows, err := q.repo.ListForRoomRange(ctx, roomID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list room bookings")
	}
	return viewsFromBookings(rows, actor), nil
}

func viewsFromBookings(rows []*booking.Booking, actor booking.Actor) []*BookingView {
	views := make([]*BookingView, len(rows))
	for i, b := range rows {
		views[i] = ViewFromBooking(b, actor)
	}
	return views
}
