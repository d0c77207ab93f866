package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("invalid booking period")
	ErrInvalidDate   = errors.New("invalid booking date")
	ErrDateInPast    = errors.New("cannot book a desk in the past")
	ErrMissingDesk   = errors.New("desk is required")
	ErrMissingActor  = errors.New("booking owner is required")
)

// Booking is a single (desk, date, period) reservation held by one user.
type Booking struct {
	id         int64
	userID     int64
	userName   string
	deskID     int64
	deskNumber int
	roomID     int64
	roomName   string
	date       Date
	period     Period
	createdAt  time.Time
}

func NewBooking(actor Actor, deskID int64, date Date, period Period, today Date) (*Booking, error) {
	if actor.IsZero() {
		return nil, ErrMissingActor
	}
	if deskID == 0 {
		return nil, ErrMissingDesk
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	return &Booking{
		userID:   actor.ID,
		userName: actor.Name,
		deskID:   deskID,
		date:     date,
		period:   period,
	}, nil
}

func ReconstructBooking(
	id, userID int64,
	userName string,
	deskID int64,
	deskNumber int,
	roomID int64,
	roomName string,
	date Date,
	period Period,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		userName:   userName,
		deskID:     deskID,
		deskNumber: deskNumber,
		roomID:     roomID,
		roomName:   roomName,
		date:       date,
		period:     period,
		createdAt:  createdAt,
	}
}

func (b *Booking) IsOwnedBy(actor Actor) bool {
	return b.userID == actor.ID
}

func (b *Booking) ID() int64           { return b.id }
func (b *Booking) UserID() int64       { return b.userID }
func (b *Booking) UserName() string    { return b.userName }
func (b *Booking) DeskID() int64       { return b.deskID }
func (b *Booking) DeskNumber() int     { return b.deskNumber }
func (b *Booking) RoomID() int64       { return b.roomID }
func (b *Booking) RoomName() string    { return b.roomName }
func (b *Booking) Date() Date          { return b.date }
func (b *Booking) Period() Period      { return b.period }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
