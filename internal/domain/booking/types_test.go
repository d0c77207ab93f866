//go:build unit

package booking_test

import (
	"testing"

	"deskbooker/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOverlaps(t *testing.T) {
	cases := []struct {
		name      string
		existing  booking.Period
		requested booking.Period
		want      bool
	}{
		{name: "am blocks am", existing: booking.PeriodAM, requested: booking.PeriodAM, want: true},
		{name: "am does not block pm", existing: booking.PeriodAM, requested: booking.PeriodPM, want: false},
		{name: "am blocks full", existing: booking.PeriodAM, requested: booking.PeriodFull, want: true},
		{name: "pm does not block am", existing: booking.PeriodPM, requested: booking.PeriodAM, want: false},
		{name: "pm blocks pm", existing: booking.PeriodPM, requested: booking.PeriodPM, want: true},
		{name: "pm blocks full", existing: booking.PeriodPM, requested: booking.PeriodFull, want: true},
		{name: "full blocks am", existing: booking.PeriodFull, requested: booking.PeriodAM, want: true},
		{name: "full blocks pm", existing: booking.PeriodFull, requested: booking.PeriodPM, want: true},
		{name: "full blocks full", existing: booking.PeriodFull, requested: booking.PeriodFull, want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.existing.Overlaps(c.requested))
		})
	}
}

func TestPeriodIsValid(t *testing.T) {
	assert.True(t, booking.PeriodAM.IsValid())
	assert.True(t, booking.PeriodPM.IsValid())
	assert.True(t, booking.PeriodFull.IsValid())
	assert.False(t, booking.Period("").IsValid())
	assert.False(t, booking.Period("morning").IsValid())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "AM", booking.PeriodAM.Label())
	assert.Equal(t, "PM", booking.PeriodPM.Label())
	assert.Equal(t, "Full Day", booking.PeriodFull.Label())
}

func TestDate(t *testing.T) {
	t.Run("parses ISO date", func(t *testing.T) {
		d, err := booking.NewDate("2026-03-15")
		assert.NoError(t, err)
		assert.Equal(t, "2026-03-15", d.String())
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, err := booking.NewDate("")
		assert.Error(t, err)
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		_, err := booking.NewDate("15/03/2026")
		assert.Error(t, err)
	})

	t.Run("ordering", func(t *testing.T) {
		earlier, err := booking.NewDate("2026-03-14")
		assert.NoError(t, err)
		later, err := booking.NewDate("2026-03-15")
		assert.NoError(t, err)

		assert.True(t, earlier.Before(later))
		assert.False(t, later.Before(earlier))
		assert.True(t, later.Equal(later))
	})

	t.Run("zero value renders empty", func(t *testing.T) {
		var d booking.Date
		assert.True(t, d.IsZero())
		assert.Equal(t, "", d.String())
	})
}
