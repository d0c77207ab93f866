package writestore

import (
	"context"
	"errors"
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type BookingWriteStore struct {
	pool *pgxpool.Pool
}

func NewBookingWriteStore(pool *pgxpool.Pool) *BookingWriteStore {
	return &BookingWriteStore{pool: pool}
}

// Create persists one booking inside a transaction. The caller's other
// bookings on the same date are checked first under a row lock, so two
// concurrent submissions from the same user cannot both slip past the
// overlap rule. A clash surfaces as *infra.ConflictError with the
// blocking booking attached.
func (s *BookingWriteStore) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := s.checkUserConflict(ctx, tx, b); err != nil {
		return nil, err
	}

	deskNumber, roomID, roomName, err := s.deskContext(ctx, tx, b.DeskID())
	if err != nil {
		return nil, err
	}

	sql, args, err := infra.Builder.
		Insert("bookings").
		Columns("user_id", "user_name", "desk_id", "date", "period").
		Values(b.UserID(), b.UserName(), b.DeskID(), b.Date().Time(), b.Period().String()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var (
		id        int64
		createdAt time.Time
	)
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id, &createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, infra.NewConflictError("This desk is already booked for the selected time slot", nil)
		}
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit booking", err)
	}

	return booking.ReconstructBooking(
		id, b.UserID(), b.UserName(), b.DeskID(), deskNumber, roomID, roomName,
		b.Date(), b.Period(), createdAt,
	), nil
}

// checkUserConflict applies the overlap rule across all of the user's
// bookings on the requested date, regardless of desk or room. The first
// blocking booking wins and is reported back in full.
func (s *BookingWriteStore) checkUserConflict(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	sql, args, err := infra.Builder.
		Select("b.period", "d.desk_number", "d.room_id", "r.name").
		From("bookings b").
		Join("desks d ON d.id = b.desk_id").
		Join("rooms r ON r.id = d.room_id").
		Where("b.user_id = ?", b.UserID()).
		Where("b.date = ?", b.Date().Time()).
		OrderBy("b.created_at", "b.id").
		Suffix("FOR UPDATE OF b").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build conflict query", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking conflicts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			period     string
			deskNumber int
			roomID     int64
			roomName   string
		)
		if err := rows.Scan(&period, &deskNumber, &roomID, &roomName); err != nil {
			return infra.WrapRepoErr("failed to scan conflicting booking", err)
		}
		if booking.Period(period).Overlaps(b.Period()) {
			return infra.NewConflictError(
				"You already have a booking for this time slot",
				&infra.ExistingBooking{
					Date:       b.Date().String(),
					Period:     booking.Period(period),
					DeskNumber: deskNumber,
					RoomID:     roomID,
					RoomName:   roomName,
				},
			)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read conflicting bookings", err)
	}
	return nil
}

func (s *BookingWriteStore) deskContext(ctx context.Context, tx pgx.Tx, deskID int64) (int, int64, string, error) {
	sql, args, err := infra.Builder.
		Select("d.desk_number", "d.room_id", "r.name").
		From("desks d").
		Join("rooms r ON r.id = d.room_id").
		Where("d.id = ?", deskID).
		ToSql()
	if err != nil {
		return 0, 0, "", infra.WrapRepoErr("failed to build desk query", err)
	}

	var (
		deskNumber int
		roomID     int64
		roomName   string
	)
	if err := tx.QueryRow(ctx, sql, args...).Scan(&deskNumber, &roomID, &roomName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, "", infra.WrapRepoErr("desk not found", err, infra.KindNotFound)
		}
		return 0, 0, "", infra.WrapRepoErr("failed to find desk", err)
	}
	return deskNumber, roomID, roomName, nil
}

func (s *BookingWriteStore) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	sql, args, err := infra.Builder.
		Select(
			"b.id", "b.user_id", "b.user_name",
			"b.desk_id", "d.desk_number", "d.room_id", "r.name",
			"b.date", "b.period", "b.created_at",
		).
		From("bookings b").
		Join("desks d ON d.id = b.desk_id").
		Join("rooms r ON r.id = d.room_id").
		Where("b.id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var (
		bookingID, userID, deskID, roomID int64
		deskNumber                        int
		userName, roomName, period        string
		date, createdAt                   time.Time
	)
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(
		&bookingID, &userID, &userName,
		&deskID, &deskNumber, &roomID, &roomName,
		&date, &period, &createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return booking.ReconstructBooking(
		bookingID, userID, userName, deskID, deskNumber, roomID, roomName,
		booking.DateOf(date), booking.Period(period), createdAt,
	), nil
}

func (s *BookingWriteStore) Delete(ctx context.Context, id int64) error {
	sql, args, err := infra.Builder.
		Delete("bookings").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking delete", err)
	}

	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
