package repository

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ListRoomReservedIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomReservedIntervalsParams) ([]sqlc.ListRoomReservedIntervalsRow, error)
}

type BookingRepository struct {
	logger  *slog.Logger
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(logger *slog.Logger, queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		logger:  logger,
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to map booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) ReservedIntervals(ctx context.Context, roomID uuid.UUID, window stay.DateRange) ([]stay.ReservedInterval, error) {
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
		iv, err := converter.ReservedIntervalFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to map reserved interval", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}
