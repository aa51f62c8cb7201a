package repository

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/infra/sqlc"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	GetRoomByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
}

type RoomRepository struct {
	logger  *slog.Logger
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(logger *slog.Logger, queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		logger:  logger,
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to get room", err)
	}
	return r.toDomain(row)
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to lock room", err)
	}
	return r.toDomain(row)
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, r.db, converter.RoomToUpdateParams(rm))
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func (r *RoomRepository) toDomain(row sqlc.Rooms) (*room.Room, error) {
	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to map room row", err)
	}
	return rm, nil
}
