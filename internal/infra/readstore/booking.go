package readstore

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViewRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.BookingViewRow, error)
}

type BookingReadStore struct {
	logger       *slog.Logger
	queries      BookingReadQueries
	consumptions ConsumptionReadQueries
	db           sqlc.DBTX
	uow          shared.UnitOfWork
}

func NewBookingReadStore(
	logger *slog.Logger,
	queries BookingReadQueries,
	consumptions ConsumptionReadQueries,
	db sqlc.DBTX,
	uow shared.UnitOfWork,
) *BookingReadStore {
	return &BookingReadStore{
		logger:       logger,
		queries:      queries,
		consumptions: consumptions,
		db:           db,
		uow:          uow,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find booking by ID", err)
	}
	return r.toView(row)
}

// FindWithConsumptions reads the booking and its charges from one snapshot so
// a quote never mixes a booking with charges added after it was read.
func (r *BookingReadStore) FindWithConsumptions(ctx context.Context, id uuid.UUID) (*queries.BookingView, []*queries.ConsumptionView, error) {
	var (
		view  *queries.BookingView
		items []*queries.ConsumptionView
	)
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		row, err := r.queries.GetBookingViewByID(ctx, db, id)
		if err != nil {
			return infra.WrapDBErr(r.logger, "failed to find booking by ID", err)
		}
		if view, err = r.toView(row); err != nil {
			return err
		}
		rows, err := r.consumptions.ListConsumptionsByBooking(ctx, db, id)
		if err != nil {
			return infra.WrapDBErr(r.logger, "failed to list consumptions", err)
		}
		items, err = consumptionViews(r.logger, rows)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return view, items, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db, sqlc.ListBookingViewsParams{
		RoomID: pgconv.UUIDPtrToPgtype(filter.RoomID),
		From:   pgconv.DatePtrToPgtype(filter.From),
		To:     pgconv.DatePtrToPgtype(filter.To),
		Status: pgconv.StringPtrToPgtype(filter.Status),
		Limit:  int32(filter.Limit), // #nosec G115 -- clamped by the query layer
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *BookingReadStore) toView(row sqlc.BookingViewRow) (*queries.BookingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking price", err)
	}
	start := pgconv.DateFromPgtype(row.StartDate)
	end := pgconv.DateFromPgtype(row.EndDate)

	return &queries.BookingView{
		ID:            row.ID,
		RoomID:        row.RoomID,
		RoomName:      row.RoomName,
		ClientID:      pgconv.UUIDPtrFromPgtype(row.ClientID),
		ClientName:    row.ClientName,
		StartDate:     start,
		EndDate:       end,
		Nights:        stay.NightsBetween(start, end),
		Status:        row.Status,
		PricePerNight: price,
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		Email:         pgconv.StringPtrFromPgtype(row.Email),
		InvoiceID:     pgconv.UUIDPtrFromPgtype(row.InvoiceID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
