package readstore

import (
	"context"
	"errors"

	"deskbooker/internal/domain/layout"
	"deskbooker/internal/infra"
	"deskbooker/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type RoomReadStore struct {
	db infra.DBTX
}

func NewRoomReadStore(db infra.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	sql, args, err := infra.Builder.
		Select("id", "name", "number_of_desks").
		From("rooms").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build rooms query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Name, &v.NumberOfDesks); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}
	return views, nil
}

func (r *RoomReadStore) FindRoom(ctx context.Context, id int64) (*queries.RoomView, error) {
	sql, args, err := infra.Builder.
		Select("id", "name", "number_of_desks").
		From("rooms").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build room query", err)
	}

	var v queries.RoomView
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&v.ID, &v.Name, &v.NumberOfDesks); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &v, nil
}

func (r *RoomReadStore) ListDesks(ctx context.Context, roomID int64) ([]*queries.DeskView, error) {
	sql, args, err := infra.Builder.
		Select("id", "room_id", "desk_number", "location_description", "is_active").
		From("desks").
		Where("room_id = ?", roomID).
		OrderBy("desk_number").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build desks query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list desks", err)
	}
	defer rows.Close()

	var views []*queries.DeskView
	for rows.Next() {
		var v queries.DeskView
		if err := rows.Scan(&v.ID, &v.RoomID, &v.DeskNumber, &v.LocationDescription, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan desk", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read desks", err)
	}
	return views, nil
}

func (r *RoomReadStore) FindLayout(ctx context.Context, roomID int64) (*layout.Layout, error) {
	sql, args, err := infra.Builder.
		Select("room_id", "version", "canvas_width", "canvas_height", "layout_json").
		From("room_layouts").
		Where("room_id = ?", roomID).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build layout query", err)
	}

	var (
		id                     int64
		version, width, height int
		layoutJSON             []byte
	)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &version, &width, &height, &layoutJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room layout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room layout", err)
	}

	l, err := layout.Parse(id, version, width, height, layoutJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse room layout", err)
	}
	return l, nil
}
