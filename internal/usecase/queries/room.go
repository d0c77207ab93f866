package queries

import (
	"context"

	"deskbooker/internal/domain/layout"
	"deskbooker/internal/infra"
	"deskbooker/internal/pkg/errs"
)

var (
	ErrRoomNotFound   = errs.New("room not found")
	ErrLayoutNotFound = errs.New("room layout not found")
)

type RoomViewRepo interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	FindRoom(ctx context.Context, id int64) (*RoomView, error)
	ListDesks(ctx context.Context, roomID int64) ([]*DeskView, error)
	FindLayout(ctx context.Context, roomID int64) (*layout.Layout, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
	ListDesks(ctx context.Context, roomID int64) ([]*DeskView, error)
	GetLayout(ctx context.Context, roomID int64) (*layout.Layout, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	return q.repo.ListRooms(ctx)
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	view, err := q.repo.FindRoom(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return view, nil
}

func (q *roomQueriesImpl) ListDesks(ctx context.Context, roomID int64) ([]*DeskView, error) {
	return q.repo.ListDesks(ctx, roomID)
}

func (q *roomQueriesImpl) GetLayout(ctx context.Context, roomID int64) (*layout.Layout, error) {
	l, err := q.repo.FindLayout(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLayoutNotFound
		}
		return nil, errs.Wrap(err, "failed to find room layout")
	}
	return l, nil
}
