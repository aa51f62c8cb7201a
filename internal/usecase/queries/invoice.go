package queries

import (
	"context"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, window DateWindow) ([]*InvoiceView, error)
}

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, window DateWindow) ([]*InvoiceView, error)
}

type invoiceQueriesImpl struct {
	store InvoiceReadStore
}

func NewInvoiceQueries(store InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{store: store}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrInvoiceNotFound)
	}
	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, window DateWindow) ([]*InvoiceView, error) {
	if err := validateWindow(window.From, window.To); err != nil {
		return nil, err
	}
	window.Limit = clampLimit(window.Limit)
	return q.store.List(ctx, window)
}
