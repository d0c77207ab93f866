package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/infra"
	"deskbooker/internal/pkg/clock"
	"deskbooker/internal/pkg/errs"
	"deskbooker/internal/usecase/queries"
)

var (
	ErrIncompleteSelection     = errs.New("room, desk, date and period are required")
	ErrNoBookingsProvided      = errs.New("no bookings provided")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrNotBookingOwner         = errs.New("booking belongs to another user")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotRequest is one requested (desk, date, period) slot.
type SlotRequest struct {
	RoomID int64  `json:"room"`
	DeskID int64  `json:"desk"`
	Date   string `json:"date"`
	Period string `json:"period"`
}

// SubmitError reports one rejected slot. Reason is always a
// human-readable message; Existing carries the structured clash
// descriptor when the store supplied one.
type SubmitError struct {
	Request  SlotRequest            `json:"booking"`
	Reason   string                 `json:"error"`
	Existing *infra.ExistingBooking `json:"existing_booking,omitempty"`
}

// SubmitResult reports created and failed slots independently. One
// slot's conflict never removes sibling slots from Created.
type SubmitResult struct {
	Created []*queries.BookingView `json:"created"`
	Errors  []SubmitError          `json:"errors"`
}

type BookingCommands interface {
	Submit(ctx context.Context, actor booking.Actor, req SlotRequest) (*SubmitResult, error)
	SubmitBulk(ctx context.Context, actor booking.Actor, reqs []SlotRequest) (*SubmitResult, error)
	Cancel(ctx context.Context, actor booking.Actor, bookingID int64) error
}

type bookingCommandsImpl struct {
	repo  BookingWriteRepo
	clock clock.Clock
}

func NewBookingCommands(repo BookingWriteRepo, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{repo: repo, clock: clock}
}

// Submit creates a single booking. The interactive map keeps exactly
// one slot pending at a time, so this path never batches. Missing
// inputs fail before any store call.
func (c *bookingCommandsImpl) Submit(ctx context.Context, actor booking.Actor, req SlotRequest) (*SubmitResult, error) {
	if req.RoomID == 0 || req.DeskID == 0 || req.Date == "" || req.Period == "" {
		return nil, ErrIncompleteSelection
	}

	result := &SubmitResult{}
	c.submitOne(ctx, actor, req, result)
	return result, nil
}

// SubmitBulk creates several slots with independent per-item outcomes,
// used by the plain date-grid flow without a visual map.
func (c *bookingCommandsImpl) SubmitBulk(ctx context.Context, actor booking.Actor, reqs []SlotRequest) (*SubmitResult, error) {
	if len(reqs) == 0 {
		return nil, ErrNoBookingsProvided
	}

	result := &SubmitResult{}
	for _, req := range reqs {
		c.submitOne(ctx, actor, req, result)
	}
	return result, nil
}

func (c *bookingCommandsImpl) submitOne(ctx context.Context, actor booking.Actor, req SlotRequest, result *SubmitResult) {
	entity, err := c.toDomain(actor, req)
	if err != nil {
		result.Errors = append(result.Errors, SubmitError{Request: req, Reason: err.Error()})
		return
	}

	created, err := c.repo.Create(ctx, entity)
	if err != nil {
		result.Errors = append(result.Errors, c.submitError(req, err))
		return
	}

	result.Created = append(result.Created, queries.ViewFromBooking(created, actor))
}

func (c *bookingCommandsImpl) toDomain(actor booking.Actor, req SlotRequest) (*booking.Booking, error) {
	date, err := booking.NewDate(req.Date)
	if err != nil {
		return nil, err
	}
	today := booking.DateOf(c.clock.Now())
	return booking.NewBooking(actor, req.DeskID, date, booking.Period(req.Period), today)
}

func (c *bookingCommandsImpl) submitError(req SlotRequest, err error) SubmitError {
	var conflict *infra.ConflictError
	if errors.As(err, &conflict) {
		return SubmitError{
			Request:  req,
			Reason:   ConflictMessage(conflict),
			Existing: conflict.Existing,
		}
	}
	return SubmitError{Request: req, Reason: err.Error()}
}

// ConflictMessage renders a deterministic message for a store
// rejection. With a structured clash descriptor the shape is always
// "<date> (<PERIOD>): You already have a booking for this time slot on
// Desk <n> in <room>"; otherwise the store's own text is used.
func ConflictMessage(conflict *infra.ConflictError) string {
	ex := conflict.Existing
	if ex == nil {
		return conflict.Message
	}

	roomName := ex.RoomName
	if roomName == "" {
		roomName = fmt.Sprintf("Room %d", ex.RoomID)
	}

	return fmt.Sprintf(
		"%s (%s): You already have a booking for this time slot on Desk %d in %s",
		ex.Date, strings.ToUpper(ex.Period.String()), ex.DeskNumber, roomName,
	)
}

// Cancel removes exactly one booking by id; it never cascades. Callers
// re-run the availability query afterwards.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor booking.Actor, bookingID int64) error {
	existing, err := c.repo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !existing.IsOwnedBy(actor) {
		return ErrNotBookingOwner
	}

	if err := c.repo.Delete(ctx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
