//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/domain/desk"
	"deskbooker/internal/domain/layout"
	"deskbooker/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomRepo struct {
	desks  []*queries.DeskView
	layout *layout.Layout
	err    error
}

func (r *fakeRoomRepo) ListRooms(context.Context) ([]*queries.RoomView, error) { return nil, nil }
func (r *fakeRoomRepo) FindRoom(context.Context, int64) (*queries.RoomView, error) {
	return nil, nil
}
func (r *fakeRoomRepo) ListDesks(context.Context, int64) ([]*queries.DeskView, error) {
	return r.desks, r.err
}
func (r *fakeRoomRepo) FindLayout(context.Context, int64) (*layout.Layout, error) {
	return r.layout, r.err
}

type fakeBookingRepo struct {
	dayBookings []*booking.Booking
	freeIDs     []int64
	err         error
}

func (r *fakeBookingRepo) ListForRoomDate(context.Context, int64, booking.Date) ([]*booking.Booking, error) {
	return r.dayBookings, r.err
}
func (r *fakeBookingRepo) ListForRoomRange(context.Context, int64, booking.Date, booking.Date) ([]*booking.Booking, error) {
	return r.dayBookings, r.err
}
func (r *fakeBookingRepo) ListByUser(context.Context, int64) ([]*booking.Booking, error) {
	return r.dayBookings, r.err
}
func (r *fakeBookingRepo) FreeDeskIDs(context.Context, int64, booking.Date, booking.Period) ([]int64, error) {
	return r.freeIDs, r.err
}

func deskView(id int64, number int, active bool) *queries.DeskView {
	return &queries.DeskView{ID: id, RoomID: 2, DeskNumber: number, IsActive: active}
}

func roomBooking(t *testing.T, id, userID, deskID int64, period booking.Period) *booking.Booking {
	t.Helper()
	date, err := booking.NewDate("2026-03-15")
	require.NoError(t, err)
	return booking.ReconstructBooking(
		id, userID, "user", deskID, int(deskID), 2, "Lab",
		date, period, time.Now(),
	)
}

func TestRoomAvailability(t *testing.T) {
	actor := booking.Actor{ID: 42, Name: "dana"}
	date, err := booking.NewDate("2026-03-15")
	require.NoError(t, err)

	t.Run("classifies desks for a queried slot", func(t *testing.T) {
		roomRepo := &fakeRoomRepo{desks: []*queries.DeskView{
			deskView(1, 1, true),
			deskView(2, 2, true),
			deskView(3, 3, false),
		}}
		bookingRepo := &fakeBookingRepo{
			freeIDs:     []int64{1},
			dayBookings: []*booking.Booking{roomBooking(t, 10, 42, 2, booking.PeriodAM)},
		}

		view, err := queries.NewAvailabilityQueries(roomRepo, bookingRepo).
			RoomAvailability(context.Background(), actor, 2, date, booking.PeriodAM)
		require.NoError(t, err)

		assert.Equal(t, 3, view.TotalDesks)
		assert.Equal(t, 1, view.AvailableDesks)
		assert.Equal(t, 1, view.BookedDesks)
		assert.Equal(t, []int64{1}, view.FreeDeskIDs)

		wantStatuses := map[int64]desk.Status{
			1: desk.StatusAvailable,
			2: desk.StatusUnavailable,
			3: desk.StatusInactive,
		}
		if diff := cmp.Diff(wantStatuses, view.Statuses); diff != "" {
			t.Errorf("statuses mismatch (-want +got):\n%s", diff)
		}

		require.Contains(t, view.Details, int64(2))
		assert.True(t, view.Details[2].IsMine)
		assert.NotContains(t, view.Details, int64(1))
	})

	t.Run("unset date yields unknown statuses and no details", func(t *testing.T) {
		roomRepo := &fakeRoomRepo{desks: []*queries.DeskView{
			deskView(1, 1, true),
			deskView(3, 3, false),
		}}
		bookingRepo := &fakeBookingRepo{
			freeIDs:     []int64{1},
			dayBookings: []*booking.Booking{roomBooking(t, 10, 99, 1, booking.PeriodAM)},
		}

		view, err := queries.NewAvailabilityQueries(roomRepo, bookingRepo).
			RoomAvailability(context.Background(), actor, 2, booking.Date{}, booking.PeriodAM)
		require.NoError(t, err)

		assert.Equal(t, desk.StatusUnknown, view.Statuses[1])
		assert.Equal(t, desk.StatusInactive, view.Statuses[3])
		assert.Empty(t, view.Details)
		assert.Zero(t, view.AvailableDesks)
		assert.Zero(t, view.BookedDesks)
	})

	t.Run("unset period yields unknown statuses", func(t *testing.T) {
		roomRepo := &fakeRoomRepo{desks: []*queries.DeskView{deskView(1, 1, true)}}
		view, err := queries.NewAvailabilityQueries(roomRepo, &fakeBookingRepo{}).
			RoomAvailability(context.Background(), actor, 2, date, "")
		require.NoError(t, err)

		assert.Equal(t, desk.StatusUnknown, view.Statuses[1])
	})

	t.Run("repo error propagates", func(t *testing.T) {
		roomRepo := &fakeRoomRepo{desks: []*queries.DeskView{deskView(1, 1, true)}}
		bookingRepo := &fakeBookingRepo{err: assert.AnError}

		_, err := queries.NewAvailabilityQueries(roomRepo, bookingRepo).
			RoomAvailability(context.Background(), actor, 2, date, booking.PeriodAM)
		assert.Error(t, err)
	})
}
