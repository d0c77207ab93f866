package booking

import "strings"

// Period is the bookable window within a single date.
type Period string

const (
	PeriodAM   Period = "am"
	PeriodPM   Period = "pm"
	PeriodFull Period = "full"
)

func (p Period) String() string {
	return string(p)
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodAM, PeriodPM, PeriodFull:
		return true
	default:
		return false
	}
}

// Overlaps reports whether an existing booking with period p blocks a
// request for the given period. The rule is asymmetric: a full-day
// request conflicts with any existing booking that day, while an AM
// request only conflicts with AM or full-day bookings, never PM.
func (p Period) Overlaps(requested Period) bool {
	if requested == PeriodFull {
		return true
	}
	return p == requested || p == PeriodFull
}

func (p Period) Label() string {
	switch p {
	case PeriodAM:
		return "AM"
	case PeriodPM:
		return "PM"
	case PeriodFull:
		return "Full Day"
	default:
		return strings.ToUpper(string(p))
	}
}
