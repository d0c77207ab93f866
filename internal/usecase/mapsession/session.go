package mapsession

import (
	"context"
	"log/slog"
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/domain/desk"
	"deskbooker/internal/domain/layout"
	"deskbooker/internal/pkg/errs"
	"deskbooker/internal/usecase/queries"
)

var (
	ErrNotInteractive   = errs.New("map is not interactive in this state")
	ErrDeskNotAvailable = errs.New("desk is not available for the selected slot")
)

// Fetcher is the side-effecting edge the session awaits. Implemented by
// the availability query layer; faked in tests.
type Fetcher interface {
	RoomLayout(ctx context.Context, roomID int64) (*layout.Layout, error)
	RoomDesks(ctx context.Context, roomID int64) ([]*queries.DeskView, error)
	RoomAvailability(ctx context.Context, actor booking.Actor, roomID int64, date booking.Date, period booking.Period) (*queries.AvailabilityView, error)
}

// Snapshot is the session's externally visible value at one instant.
// Everything a caller renders comes from here; the maps are derived and
// recomputed on every input change, never mutated in place.
type Snapshot struct {
	State         MapState
	Message       string
	Interactive   bool
	RoomID        int64
	Date          booking.Date
	Period        booking.Period
	SelectedDesk  int64
	InspectedDesk int64
	HasLayout     bool
	Statuses      map[int64]desk.Status
	StatusesByNum map[int]desk.Status
	Details       map[int64]*booking.DeskBookingDetail
}

type Factory struct {
	fetcher Fetcher
	timeout time.Duration
	logger  *slog.Logger
}

func NewFactory(fetcher Fetcher, timeout time.Duration, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{fetcher: fetcher, timeout: timeout, logger: logger}
}

func (f *Factory) NewSession(actor booking.Actor) *Session {
	return &Session{
		fetcher: f.fetcher,
		timeout: f.timeout,
		logger:  f.logger,
		actor:   actor,
		period:  booking.PeriodFull,
		state:   StateNoRoomSelected,
	}
}

// Session drives the interactive map through its load and availability
// phases as room, date, period and underlying booking data change. One
// cooperative actor owns a session; methods are not safe for concurrent
// use, matching the single-writer model of the UI it backs.
type Session struct {
	fetcher Fetcher
	timeout time.Duration
	logger  *slog.Logger
	actor   booking.Actor

	roomID        int64
	date          booking.Date
	period        booking.Period
	selectedDesk  int64
	inspectedDesk int64

	state         MapState
	layout        *layout.Layout
	layoutErr     error
	statuses      map[int64]desk.Status
	statusesByNum map[int]desk.Status
	details       map[int64]*booking.DeskBookingDetail

	// gen stamps each input change. A fetch started under an older gen
	// resolves against stale inputs and its result is discarded.
	gen uint64
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:         s.state,
		Message:       s.state.Message(),
		Interactive:   s.state.Interactive(),
		RoomID:        s.roomID,
		Date:          s.date,
		Period:        s.period,
		SelectedDesk:  s.selectedDesk,
		InspectedDesk: s.inspectedDesk,
		HasLayout:     s.layout.HasDeskObjects(),
		Statuses:      s.statuses,
		StatusesByNum: s.statusesByNum,
		Details:       s.details,
	}
}

// SelectRoom switches rooms and reloads the layout. Selection,
// inspected desk and booking-detail cache are cleared up front so no
// stale state leaks across rooms.
func (s *Session) SelectRoom(ctx context.Context, roomID int64) Snapshot {
	gen := s.bump()

	s.roomID = roomID
	s.date = booking.Date{}
	s.period = booking.PeriodFull
	s.selectedDesk = 0
	s.inspectedDesk = 0
	s.layout = nil
	s.layoutErr = nil
	s.clearDerived()

	if roomID == 0 {
		s.state = StateNoRoomSelected
		return s.Snapshot()
	}

	s.state = StateLayoutLoading

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	l, err := s.fetcher.RoomLayout(fetchCtx, roomID)

	if s.stale(gen) {
		return s.Snapshot()
	}

	if err != nil {
		// A failed layout fetch and a layout without desks fall back the
		// same way for the user; the cause is kept for diagnostics.
		s.layoutErr = err
		s.logger.Warn("room layout fetch failed, falling back to desk list",
			"room_id", roomID, "error", err)
		s.state = StateLayoutMissing
		return s.Snapshot()
	}

	s.layout = l
	if !l.HasDeskObjects() {
		s.state = StateLayoutMissing
		return s.Snapshot()
	}

	return s.refreshAvailability(ctx)
}

func (s *Session) SetDate(ctx context.Context, date booking.Date) Snapshot {
	s.bump()
	s.date = date
	return s.refreshAvailability(ctx)
}

func (s *Session) SetPeriod(ctx context.Context, period booking.Period) Snapshot {
	s.bump()
	s.period = period
	return s.refreshAvailability(ctx)
}

func (s *Session) ClearDate(ctx context.Context) Snapshot {
	s.bump()
	s.date = booking.Date{}
	return s.refreshAvailability(ctx)
}

func (s *Session) ClearPeriod(ctx context.Context) Snapshot {
	s.bump()
	s.period = ""
	return s.refreshAvailability(ctx)
}

// Refresh re-runs the availability query against ground truth. Callers
// invoke it after every submission or cancellation attempt.
func (s *Session) Refresh(ctx context.Context) Snapshot {
	s.bump()
	return s.refreshAvailability(ctx)
}

// SelectDesk accepts a desk click. Only available desks in an
// interactive state can be selected.
func (s *Session) SelectDesk(deskID int64) error {
	if !s.state.Interactive() {
		return ErrNotInteractive
	}
	if !s.statuses[deskID].Bookable() {
		return ErrDeskNotAvailable
	}
	s.selectedDesk = deskID
	s.inspectedDesk = deskID
	return nil
}

// InspectDesk opens a desk's booking detail without selecting it. Any
// desk can be inspected while the map is interactive.
func (s *Session) InspectDesk(deskID int64) error {
	if !s.state.Interactive() {
		return ErrNotInteractive
	}
	s.inspectedDesk = deskID
	return nil
}

func (s *Session) ClearSelection() {
	s.selectedDesk = 0
}

func (s *Session) refreshAvailability(ctx context.Context) Snapshot {
	gen := s.gen

	if s.roomID == 0 {
		s.state = StateNoRoomSelected
		return s.Snapshot()
	}
	if !s.layout.HasDeskObjects() {
		s.state = StateLayoutMissing
		return s.Snapshot()
	}

	if s.date.IsZero() || !s.period.IsValid() {
		return s.loadUnqueried(ctx, gen)
	}

	s.state = StateAvailabilityLoading

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	view, err := s.fetcher.RoomAvailability(fetchCtx, s.actor, s.roomID, s.date, s.period)

	if s.stale(gen) {
		return s.Snapshot()
	}

	if err != nil {
		s.details = map[int64]*booking.DeskBookingDetail{}
		s.state = StateAvailabilityError
		return s.Snapshot()
	}

	s.statuses = view.Statuses
	s.statusesByNum = view.StatusesByNum
	s.details = view.Details

	// A selected desk that is no longer available must not survive the
	// refresh, or the next submit would race a booking that another
	// actor already holds.
	if s.selectedDesk != 0 && !s.statuses[s.selectedDesk].Bookable() {
		s.selectedDesk = 0
		s.state = StateSelectionInvalidated
		return s.Snapshot()
	}

	s.state = StateAvailabilityReady
	return s.Snapshot()
}

// loadUnqueried fills unknown/inactive statuses when date or period is
// unset. No availability query is issued and details stay empty.
func (s *Session) loadUnqueried(ctx context.Context, gen uint64) Snapshot {
	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	desks, err := s.fetcher.RoomDesks(fetchCtx, s.roomID)

	if s.stale(gen) {
		return s.Snapshot()
	}

	if err != nil {
		s.clearDerived()
		s.state = StateAvailabilityError
		return s.Snapshot()
	}

	s.statuses = make(map[int64]desk.Status, len(desks))
	s.statusesByNum = make(map[int]desk.Status, len(desks))
	for _, d := range desks {
		status := desk.StatusUnknown
		if !d.IsActive {
			status = desk.StatusInactive
		}
		s.statuses[d.ID] = status
		s.statusesByNum[d.DeskNumber] = status
	}
	s.details = map[int64]*booking.DeskBookingDetail{}

	s.state = StateDateNotSelected
	return s.Snapshot()
}

func (s *Session) clearDerived() {
	s.statuses = map[int64]desk.Status{}
	s.statusesByNum = map[int]desk.Status{}
	s.details = map[int64]*booking.DeskBookingDetail{}
}

func (s *Session) bump() uint64 {
	s.gen++
	return s.gen
}

func (s *Session) stale(gen uint64) bool {
	if s.gen != gen {
		s.logger.Debug("stale availability response discarded",
			"room_id", s.roomID, "gen", gen, "current_gen", s.gen)
		return true
	}
	return false
}
