package desk

// Status is the derived availability classification of a desk for one
// (date, period) pair. Authoritative only for the requested pair: a desk
// available for AM says nothing about PM.
type Status string

const (
	// StatusUnknown means no availability query was issued, because date
	// or period is still unset. Distinct from an empty query result.
	StatusUnknown     Status = "unknown"
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusInactive    Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnknown, StatusAvailable, StatusUnavailable, StatusInactive:
		return true
	default:
		return false
	}
}

// Bookable reports whether a desk in this status accepts selection.
func (s Status) Bookable() bool {
	return s == StatusAvailable
}
