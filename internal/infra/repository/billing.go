package repository

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/invoice"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ConsumptionWriteQueries interface {
	CreateConsumption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateConsumptionParams) error
	ListConsumptionsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Consumptions, error)
}

type ConsumptionRepository struct {
	logger  *slog.Logger
	queries ConsumptionWriteQueries
	db      sqlc.DBTX
}

func NewConsumptionRepository(logger *slog.Logger, queries ConsumptionWriteQueries, db sqlc.DBTX) *ConsumptionRepository {
	return &ConsumptionRepository{logger: logger, queries: queries, db: db}
}

func (r *ConsumptionRepository) Create(ctx context.Context, c *consumption.Consumption) error {
	if err := r.queries.CreateConsumption(ctx, r.db, converter.ConsumptionToCreateParams(c)); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create consumption", err)
	}
	return nil
}

func (r *ConsumptionRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*consumption.Consumption, error) {
	rows, err := r.queries.ListConsumptionsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list consumptions", err)
	}
	items := make([]*consumption.Consumption, 0, len(rows))
	for _, row := range rows {
		c, err := converter.ConsumptionFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to map consumption row", err)
		}
		items = append(items, c)
	}
	return items, nil
}

type InvoiceWriteQueries interface {
	NextInvoiceNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvoiceParams) error
	GetInvoiceByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Invoices, error)
}

type InvoiceRepository struct {
	logger  *slog.Logger
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(logger *slog.Logger, queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{logger: logger, queries: queries, db: db}
}

func (r *InvoiceRepository) NextSequence(ctx context.Context) (int64, error) {
	seq, err := r.queries.NextInvoiceNumber(ctx, r.db)
	if err != nil {
		return 0, infra.WrapDBErr(r.logger, "failed to allocate invoice number", err)
	}
	return seq, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	params, err := converter.InvoiceToCreateParams(inv)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode invoice", err)
	}
	if err := r.queries.CreateInvoice(ctx, r.db, params); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	_, err := r.queries.GetInvoiceByBookingID(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapDBErr(r.logger, "failed to look up invoice", err)
	}
	return true, nil
}
