//go:build unit

package booking_test

import (
	"testing"
	"time"

	"deskbooker/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) booking.Date {
	t.Helper()
	d, err := booking.NewDate(value)
	require.NoError(t, err)
	return d
}

func TestNewBooking(t *testing.T) {
	actor := booking.Actor{ID: 42, Name: "dana"}
	today := mustDate(t, "2026-03-10")

	t.Run("basic success case", func(t *testing.T) {
		b, err := booking.NewBooking(actor, 7, mustDate(t, "2026-03-15"), booking.PeriodAM, today)
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, int64(42), b.UserID())
		assert.Equal(t, "dana", b.UserName())
		assert.Equal(t, int64(7), b.DeskID())
		assert.Equal(t, "2026-03-15", b.Date().String())
		assert.Equal(t, booking.PeriodAM, b.Period())
		assert.True(t, b.IsOwnedBy(actor))
	})

	t.Run("booking for today is allowed", func(t *testing.T) {
		_, err := booking.NewBooking(actor, 7, today, booking.PeriodFull, today)
		assert.NoError(t, err)
	})

	cases := []struct {
		name   string
		actor  booking.Actor
		deskID int64
		date   booking.Date
		period booking.Period
		errIs  error
	}{
		{
			name:   "missing actor",
			deskID: 7,
			date:   mustDate(t, "2026-03-15"),
			period: booking.PeriodAM,
			errIs:  booking.ErrMissingActor,
		},
		{
			name:   "missing desk",
			actor:  actor,
			date:   mustDate(t, "2026-03-15"),
			period: booking.PeriodAM,
			errIs:  booking.ErrMissingDesk,
		},
		{
			name:   "zero date",
			actor:  actor,
			deskID: 7,
			period: booking.PeriodAM,
			errIs:  booking.ErrInvalidDate,
		},
		{
			name:   "invalid period",
			actor:  actor,
			deskID: 7,
			date:   mustDate(t, "2026-03-15"),
			period: booking.Period("morning"),
			errIs:  booking.ErrInvalidPeriod,
		},
		{
			name:   "date in the past",
			actor:  actor,
			deskID: 7,
			date:   mustDate(t, "2026-03-09"),
			period: booking.PeriodAM,
			errIs:  booking.ErrDateInPast,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.NewBooking(c.actor, c.deskID, c.date, c.period, today)
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestReconstructBooking(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	b := booking.ReconstructBooking(
		11, 42, "dana", 7, 3, 2, "Lab",
		mustDate(t, "2026-03-15"), booking.PeriodPM, createdAt,
	)

	assert.Equal(t, int64(11), b.ID())
	assert.Equal(t, int64(42), b.UserID())
	assert.Equal(t, "dana", b.UserName())
	assert.Equal(t, int64(7), b.DeskID())
	assert.Equal(t, 3, b.DeskNumber())
	assert.Equal(t, int64(2), b.RoomID())
	assert.Equal(t, "Lab", b.RoomName())
	assert.Equal(t, booking.PeriodPM, b.Period())
	assert.Equal(t, createdAt, b.CreatedAt())
	assert.False(t, b.IsOwnedBy(booking.Actor{ID: 43}))
}
