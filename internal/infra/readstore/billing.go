package readstore

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConsumptionReadQueries interface {
	ListConsumptionsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Consumptions, error)
}

type ConsumptionReadStore struct {
	logger  *slog.Logger
	queries ConsumptionReadQueries
	db      sqlc.DBTX
}

func NewConsumptionReadStore(logger *slog.Logger, queries ConsumptionReadQueries, db sqlc.DBTX) *ConsumptionReadStore {
	return &ConsumptionReadStore{logger: logger, queries: queries, db: db}
}

func (r *ConsumptionReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.ConsumptionView, error) {
	rows, err := r.queries.ListConsumptionsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list consumptions", err)
	}
	return consumptionViews(r.logger, rows)
}

func consumptionViews(logger *slog.Logger, rows []sqlc.Consumptions) ([]*queries.ConsumptionView, error) {
	views := make([]*queries.ConsumptionView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to decode consumption amount", err)
		}
		views = append(views, &queries.ConsumptionView{
			ID:          row.ID,
			BookingID:   row.BookingID,
			Description: row.Description,
			Amount:      amount,
			ConsumedOn:  pgconv.DateFromPgtype(row.ConsumedOn),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

type InvoiceReadQueries interface {
	GetInvoiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Invoices, error)
	ListInvoices(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInvoicesParams) ([]sqlc.Invoices, error)
}

type InvoiceReadStore struct {
	logger  *slog.Logger
	queries InvoiceReadQueries
	db      sqlc.DBTX
}

func NewInvoiceReadStore(logger *slog.Logger, queries InvoiceReadQueries, db sqlc.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{logger: logger, queries: queries, db: db}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row, err := r.queries.GetInvoiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find invoice by ID", err)
	}
	return r.toView(row)
}

func (r *InvoiceReadStore) List(ctx context.Context, window queries.DateWindow) ([]*queries.InvoiceView, error) {
	rows, err := r.queries.ListInvoices(ctx, r.db, sqlc.ListInvoicesParams{
		From:  pgconv.DatePtrToPgtype(window.From),
		To:    pgconv.DatePtrToPgtype(window.To),
		Limit: int32(window.Limit), // #nosec G115 -- clamped by the query layer
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list invoices", err)
	}

	views := make([]*queries.InvoiceView, 0, len(rows))
	for _, row := range rows {
		v, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *InvoiceReadStore) toView(row sqlc.Invoices) (*queries.InvoiceView, error) {
	inv, err := converter.InvoiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode invoice", err)
	}
	return &queries.InvoiceView{
		ID:            inv.ID(),
		BookingID:     inv.BookingID(),
		Number:        inv.Number(),
		IssuedOn:      inv.IssuedOn(),
		Subtotal:      inv.Subtotal(),
		Tax:           inv.Tax(),
		Total:         inv.Total(),
		TaxRate:       inv.TaxRate(),
		LineItems:     inv.LineItems(),
		PaymentMethod: inv.PaymentMethod().String(),
		CreatedAt:     inv.CreatedAt(),
	}, nil
}
