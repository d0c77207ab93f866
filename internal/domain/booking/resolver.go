package booking

// DeskBookingDetail is the booking that best represents a desk's
// occupancy for a requested period. Never persisted, recomputed per
// (date, period) snapshot.
type DeskBookingDetail struct {
	Booking *Booking
	IsMine  bool
	// MultipleUsers flags more than one distinct owner among the
	// overlapping bookings. Correct conflict prevention makes this
	// impossible, so the UI surfaces it instead of resolving silently.
	MultipleUsers bool
}

// ResolveDeskBooking classifies the bookings of one desk on one date
// against a requested period. A nil result means the desk is free for
// that slot. The actor's own booking wins over other matches; otherwise
// the first match in snapshot order is taken (the store defines no
// ordering, so that choice is best-effort). Pure; never errors.
func ResolveDeskBooking(bookings []*Booking, requested Period, actor Actor) *DeskBookingDetail {
	if len(bookings) == 0 {
		return nil
	}

	var matching []*Booking
	for _, b := range bookings {
		if b.Period().Overlaps(requested) {
			matching = append(matching, b)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	chosen := matching[0]
	for _, b := range matching {
		if b.IsOwnedBy(actor) {
			chosen = b
			break
		}
	}

	detail := &DeskBookingDetail{
		Booking: chosen,
		IsMine:  chosen.IsOwnedBy(actor),
	}

	if len(matching) > 1 {
		owners := make(map[int64]struct{}, len(matching))
		for _, b := range matching {
			owners[b.UserID()] = struct{}{}
		}
		detail.MultipleUsers = len(owners) > 1
	}

	return detail
}
