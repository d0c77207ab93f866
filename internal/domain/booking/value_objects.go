package booking

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date with local-day granularity. No time zone
// conversion happens beyond truncating to the day.
type Date struct {
	t time.Time
}

func NewDate(value string) (Date, error) {
	if value == "" {
		return Date{}, errors.New("date is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, errors.New("date must be formatted as YYYY-MM-DD")
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Actor identifies the user a booking session acts on behalf of.
// Authentication itself happens upstream; only the identity matters here.
type Actor struct {
	ID   int64
	Name string
}

func (a Actor) IsZero() bool {
	return a.ID == 0
}
