//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/infra"
	"deskbooker/internal/pkg/clock"
	"deskbooker/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// fakeWriteRepo simulates the store-side conflict rule: one slot per
// desk, plus a whole-day user conflict when a seeded booking overlaps.
type fakeWriteRepo struct {
	nextID   int64
	conflict *infra.ConflictError
	byID     map[int64]*booking.Booking
	created  []*booking.Booking
	deleted  []int64
}

func newFakeWriteRepo() *fakeWriteRepo {
	return &fakeWriteRepo{nextID: 1, byID: map[int64]*booking.Booking{}}
}

func (r *fakeWriteRepo) Create(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	if r.conflict != nil {
		return nil, r.conflict
	}
	created := booking.ReconstructBooking(
		r.nextID, b.UserID(), b.UserName(), b.DeskID(), 3, 2, "Lab",
		b.Date(), b.Period(), testNow,
	)
	r.nextID++
	r.byID[created.ID()] = created
	r.created = append(r.created, created)
	return created, nil
}

func (r *fakeWriteRepo) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound)
	}
	return b, nil
}

func (r *fakeWriteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound)
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func newCommands(repo *fakeWriteRepo) commands.BookingCommands {
	return commands.NewBookingCommands(repo, clock.NewMockClock(testNow))
}

func validSlot() commands.SlotRequest {
	return commands.SlotRequest{RoomID: 2, DeskID: 7, Date: "2026-03-15", Period: "am"}
}

func TestSubmit(t *testing.T) {
	actor := booking.Actor{ID: 42, Name: "dana"}

	t.Run("creates a booking", func(t *testing.T) {
		repo := newFakeWriteRepo()
		result, err := newCommands(repo).Submit(context.Background(), actor, validSlot())
		require.NoError(t, err)

		require.Len(t, result.Created, 1)
		assert.Empty(t, result.Errors)
		assert.Equal(t, "2026-03-15", result.Created[0].Date)
		assert.Equal(t, "am", result.Created[0].Period)
		assert.True(t, result.Created[0].IsMine)
	})

	t.Run("fails fast on incomplete selection", func(t *testing.T) {
		repo := newFakeWriteRepo()
		c := newCommands(repo)

		for _, req := range []commands.SlotRequest{
			{DeskID: 7, Date: "2026-03-15", Period: "am"},
			{RoomID: 2, Date: "2026-03-15", Period: "am"},
			{RoomID: 2, DeskID: 7, Period: "am"},
			{RoomID: 2, DeskID: 7, Date: "2026-03-15"},
		} {
			_, err := c.Submit(context.Background(), actor, req)
			assert.ErrorIs(t, err, commands.ErrIncompleteSelection)
		}
		assert.Empty(t, repo.created)
	})

	t.Run("past date is rejected before the store", func(t *testing.T) {
		repo := newFakeWriteRepo()
		slot := validSlot()
		slot.Date = "2026-03-09"

		result, err := newCommands(repo).Submit(context.Background(), actor, slot)
		require.NoError(t, err)

		assert.Empty(t, result.Created)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, booking.ErrDateInPast.Error(), result.Errors[0].Reason)
		assert.Empty(t, repo.created)
	})

	t.Run("store conflict carries the existing booking", func(t *testing.T) {
		repo := newFakeWriteRepo()
		repo.conflict = infra.NewConflictError("You already have a booking for this time slot", &infra.ExistingBooking{
			Date:       "2026-03-15",
			Period:     booking.PeriodAM,
			DeskNumber: 7,
			RoomID:     2,
			RoomName:   "Lab",
		})

		result, err := newCommands(repo).Submit(context.Background(), actor, validSlot())
		require.NoError(t, err)

		require.Len(t, result.Errors, 1)
		assert.Equal(t,
			"2026-03-15 (AM): You already have a booking for this time slot on Desk 7 in Lab",
			result.Errors[0].Reason)
		require.NotNil(t, result.Errors[0].Existing)
		assert.Equal(t, booking.PeriodAM, result.Errors[0].Existing.Period)
	})
}

func TestSubmitBulk(t *testing.T) {
	actor := booking.Actor{ID: 42, Name: "dana"}

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := newCommands(newFakeWriteRepo()).SubmitBulk(context.Background(), actor, nil)
		assert.ErrorIs(t, err, commands.ErrNoBookingsProvided)
	})

	t.Run("one bad slot does not sink the batch", func(t *testing.T) {
		repo := newFakeWriteRepo()
		bad := validSlot()
		bad.Date = "not-a-date"

		result, err := newCommands(repo).SubmitBulk(context.Background(), actor, []commands.SlotRequest{
			validSlot(),
			bad,
			{RoomID: 2, DeskID: 8, Date: "2026-03-16", Period: "pm"},
		})
		require.NoError(t, err)

		assert.Len(t, result.Created, 2)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, bad, result.Errors[0].Request)
	})
}

func TestConflictMessage(t *testing.T) {
	t.Run("falls back to room id when the name is empty", func(t *testing.T) {
		conflict := infra.NewConflictError("conflict", &infra.ExistingBooking{
			Date:       "2026-03-15",
			Period:     booking.PeriodFull,
			DeskNumber: 4,
			RoomID:     9,
		})
		assert.Equal(t,
			"2026-03-15 (FULL): You already have a booking for this time slot on Desk 4 in Room 9",
			commands.ConflictMessage(conflict))
	})

	t.Run("uses the store message without a descriptor", func(t *testing.T) {
		conflict := infra.NewConflictError("This desk is already booked for the selected time slot", nil)
		assert.Equal(t, "This desk is already booked for the selected time slot", commands.ConflictMessage(conflict))
	})
}

func TestCancel(t *testing.T) {
	actor := booking.Actor{ID: 42, Name: "dana"}

	t.Run("owner can cancel", func(t *testing.T) {
		repo := newFakeWriteRepo()
		c := newCommands(repo)
		result, err := c.Submit(context.Background(), actor, validSlot())
		require.NoError(t, err)
		require.Len(t, result.Created, 1)

		err = c.Cancel(context.Background(), actor, result.Created[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, []int64{result.Created[0].ID}, repo.deleted)
	})

	t.Run("unknown booking", func(t *testing.T) {
		err := newCommands(newFakeWriteRepo()).Cancel(context.Background(), actor, 999)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		repo := newFakeWriteRepo()
		c := newCommands(repo)
		result, err := c.Submit(context.Background(), actor, validSlot())
		require.NoError(t, err)

		err = c.Cancel(context.Background(), booking.Actor{ID: 99, Name: "sam"}, result.Created[0].ID)
		assert.ErrorIs(t, err, commands.ErrNotBookingOwner)
		assert.Empty(t, repo.deleted)
	})
}
