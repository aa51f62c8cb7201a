package readstore

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomsParams) ([]sqlc.Rooms, error)
	ListRoomReservedIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomReservedIntervalsParams) ([]sqlc.ListRoomReservedIntervalsRow, error)
}

type RoomReadStore struct {
	logger  *slog.Logger
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(logger *slog.Logger, queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		logger:  logger,
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find room by ID", err)
	}
	return r.toView(row)
}

func (r *RoomReadStore) List(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db, sqlc.ListRoomsParams{
		Category:       pgconv.StringPtrToPgtype(filter.Category),
		CleaningStatus: pgconv.StringPtrToPgtype(filter.CleaningStatus),
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list rooms", err)
	}

	views := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		v, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *RoomReadStore) ReservedIntervals(ctx context.Context, roomID uuid.UUID, window stay.DateRange) ([]stay.ReservedInterval, error) {
	holding := booking.HoldingStatuses()
	statuses := make([]string, len(holding))
	for i, s := range holding {
		statuses[i] = s.String()
	}

	rows, err := r.queries.ListRoomReservedIntervals(ctx, r.db, sqlc.ListRoomReservedIntervalsParams{
		RoomID:     roomID,
		Statuses:   statuses,
		WindowFrom: pgconv.DateToPgtype(window.Start()),
		WindowTo:   pgconv.DateToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list reserved intervals", err)
	}

	intervals := make([]stay.ReservedInterval, 0, len(rows))
	for _, row := range rows {
		dates, err := stay.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored booking has an invalid range", err)
		}
		intervals = append(intervals, stay.ReservedInterval{BookingID: row.ID, Range: dates})
	}
	return intervals, nil
}

func (r *RoomReadStore) toView(row sqlc.Rooms) (*queries.RoomView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode room price", err)
	}
	return &queries.RoomView{
		ID:             row.ID,
		Name:           row.Name,
		Category:       row.Category,
		PricePerNight:  price,
		CleaningStatus: row.CleaningStatus,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
