package queries

import (
	"context"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/domain/desk"
	"deskbooker/internal/domain/layout"
	"deskbooker/internal/pkg/errs"
)

// AvailabilityQueries combines desk activation state with committed
// bookings into per-desk statuses and occupancy details. Results are
// authoritative only for the exact (room, date, period) asked; nothing
// is cached across keys because availability does not commute with
// period (an AM-available desk may be PM-unavailable).
type AvailabilityQueries interface {
	RoomLayout(ctx context.Context, roomID int64) (*layout.Layout, error)
	RoomDesks(ctx context.Context, roomID int64) ([]*DeskView, error)
	RoomAvailability(ctx context.Context, actor booking.Actor, roomID int64, date booking.Date, period booking.Period) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	roomRepo    RoomViewRepo
	bookingRepo BookingViewRepo
}

func NewAvailabilityQueries(roomRepo RoomViewRepo, bookingRepo BookingViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

func (q *availabilityQueriesImpl) RoomLayout(ctx context.Context, roomID int64) (*layout.Layout, error) {
	return q.roomRepo.FindLayout(ctx, roomID)
}

func (q *availabilityQueriesImpl) RoomDesks(ctx context.Context, roomID int64) ([]*DeskView, error) {
	return q.roomRepo.ListDesks(ctx, roomID)
}

func (q *availabilityQueriesImpl) RoomAvailability(
	ctx context.Context,
	actor booking.Actor,
	roomID int64,
	date booking.Date,
	period booking.Period,
) (*AvailabilityView, error) {
	desks, err := q.roomRepo.ListDesks(ctx, roomID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list desks")
	}

	// Date or period unset: the query is not issued. Every desk reads
	// unknown (or inactive) and no booking details are looked up, which
	// keeps this state distinguishable from an empty query result.
	if date.IsZero() || !period.IsValid() {
		return unqueriedView(roomID, date, period, desks), nil
	}

	freeIDs, err := q.bookingRepo.FreeDeskIDs(ctx, roomID, date, period)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check availability")
	}

	dayBookings, err := q.bookingRepo.ListForRoomDate(ctx, roomID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	byDesk := make(map[int64][]*booking.Booking)
	for _, b := range dayBookings {
		byDesk[b.DeskID()] = append(byDesk[b.DeskID()], b)
	}

	free := make(map[int64]struct{}, len(freeIDs))
	for _, id := range freeIDs {
		free[id] = struct{}{}
	}

	view := &AvailabilityView{
		RoomID:        roomID,
		Date:          date,
		Period:        period,
		TotalDesks:    len(desks),
		FreeDeskIDs:   freeIDs,
		Statuses:      make(map[int64]desk.Status, len(desks)),
		StatusesByNum: make(map[int]desk.Status, len(desks)),
		Details:       make(map[int64]*booking.DeskBookingDetail, len(desks)),
	}

	for _, d := range desks {
		if detail := booking.ResolveDeskBooking(byDesk[d.ID], period, actor); detail != nil {
			view.Details[d.ID] = detail
		}

		var status desk.Status
		switch {
		case !d.IsActive:
			status = desk.StatusInactive
		default:
			if _, ok := free[d.ID]; ok {
				status = desk.StatusAvailable
				view.AvailableDesks++
			} else {
				status = desk.StatusUnavailable
				view.BookedDesks++
			}
		}
		view.Statuses[d.ID] = status
		view.StatusesByNum[d.DeskNumber] = status
	}

	return view, nil
}

func unqueriedView(roomID int64, date booking.Date, period booking.Period, desks []*DeskView) *AvailabilityView {
	view := &AvailabilityView{
		RoomID:        roomID,
		Date:          date,
		Period:        period,
		TotalDesks:    len(desks),
		Statuses:      make(map[int64]desk.Status, len(desks)),
		StatusesByNum: make(map[int]desk.Status, len(desks)),
		Details:       map[int64]*booking.DeskBookingDetail{},
	}
	for _, d := range desks {
		status := desk.StatusUnknown
		if !d.IsActive {
			status = desk.StatusInactive
		}
		view.Statuses[d.ID] = status
		view.StatusesByNum[d.DeskNumber] = status
	}
	return view
}
