package readstore

import (
	"context"
	"time"

	"deskbooker/internal/domain/booking"
	"deskbooker/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func bookingSelect() sq.SelectBuilder {
	return infra.Builder.
		Select(
			"b.id", "b.user_id", "b.user_name",
			"b.desk_id", "d.desk_number", "d.room_id", "r.name",
			"b.date", "b.period", "b.created_at",
		).
		From("bookings b").
		Join("desks d ON d.id = b.desk_id").
		Join("rooms r ON r.id = d.room_id")
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, deskID, roomID int64
		deskNumber                 int
		userName, roomName, period string
		date, createdAt            time.Time
	)
	if err := row.Scan(
		&id, &userID, &userName,
		&deskID, &deskNumber, &roomID, &roomName,
		&date, &period, &createdAt,
	); err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id, userID, userName, deskID, deskNumber, roomID, roomName,
		booking.DateOf(date), booking.Period(period), createdAt,
	), nil
}

func (r *BookingReadStore) collect(ctx context.Context, builder sq.SelectBuilder) ([]*booking.Booking, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bookings query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return bookings, nil
}

func (r *BookingReadStore) ListForRoomDate(ctx context.Context, roomID int64, date booking.Date) ([]*booking.Booking, error) {
	return r.collect(ctx, bookingSelect().
		Where("d.room_id = ?", roomID).
		Where("b.date = ?", date.Time()).
		OrderBy("b.created_at", "b.id"))
}

func (r *BookingReadStore) ListForRoomRange(ctx context.Context, roomID int64, from, to booking.Date) ([]*booking.Booking, error) {
	return r.collect(ctx, bookingSelect().
		Where("d.room_id = ?", roomID).
		Where("b.date >= ?", from.Time()).
		Where("b.date <= ?", to.Time()).
		OrderBy("b.date", "d.desk_number"))
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID int64) ([]*booking.Booking, error) {
	return r.collect(ctx, bookingSelect().
		Where("b.user_id = ?", userID).
		OrderBy("b.date", "b.period"))
}

// FreeDeskIDs returns the ids of active desks in the room with no booking
// overlapping the requested period on the given date. A full-day request
// treats any existing booking as blocking; a half-day request is blocked by
// the same half or by a full-day booking.
func (r *BookingReadStore) FreeDeskIDs(ctx context.Context, roomID int64, date booking.Date, period booking.Period) ([]int64, error) {
	occupied := sq.Expr(
		"NOT EXISTS (SELECT 1 FROM bookings b WHERE b.desk_id = d.id AND b.date = ?"+periodClause(period)+")",
		occupiedArgs(date, period)...,
	)

	sql, args, err := infra.Builder.
		Select("d.id").
		From("desks d").
		Where("d.room_id = ?", roomID).
		Where("d.is_active").
		Where(occupied).
		OrderBy("d.desk_number").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build free desks query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list free desks", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan desk id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read free desks", err)
	}
	return ids, nil
}

func periodClause(period booking.Period) string {
	if period == booking.PeriodFull {
		return ""
	}
	return " AND b.period IN (?, ?)"
}

func occupiedArgs(date booking.Date, period booking.Period) []any {
	if period == booking.PeriodFull {
		return []any{date.Time()}
	}
	return []any{date.Time(), string(period), string(booking.PeriodFull)}
}
