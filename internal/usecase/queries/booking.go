package queries

import (
	"context"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/invoice"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	Quote(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	Consumptions(ctx context.Context, bookingID uuid.UUID) ([]*ConsumptionView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindWithConsumptions(ctx context.Context, id uuid.UUID) (*BookingView, []*ConsumptionView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type ConsumptionReadStore interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*ConsumptionView, error)
}

type bookingQueriesImpl struct {
	bookings     BookingReadStore
	consumptions ConsumptionReadStore
	billing      shared.BillingPolicy
}

func NewBookingQueries(bookings BookingReadStore, consumptions ConsumptionReadStore, billing shared.BillingPolicy) BookingQueries {
	return &bookingQueriesImpl{
		bookings:     bookings,
		consumptions: consumptions,
		billing:      billing,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	if filter.From != nil && filter.To != nil {
		if _, err := stay.NewDateRange(*filter.From, *filter.To); err != nil {
			return nil, err
		}
	}
	filter.Limit = clampLimit(filter.Limit)
	return q.bookings.List(ctx, filter)
}

// Quote previews the invoice of a booking in any status with the configured tax rate.
func (q *bookingQueriesImpl) Quote(ctx context.Context, id uuid.UUID) (*QuoteView, error) {
	view, items, err := q.bookings.FindWithConsumptions(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrBookingNotFound)
	}

	b, err := bookingFromView(view)
	if err != nil {
		return nil, err
	}

	totals := invoice.Quote(b, view.RoomName, consumptionsFromViews(items), q.billing.TaxRate)
	return &QuoteView{
		BookingID: id,
		Nights:    b.Dates().Nights(),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
		TaxRate:   totals.TaxRate,
		LineItems: totals.LineItems,
	}, nil
}

func (q *bookingQueriesImpl) Consumptions(ctx context.Context, bookingID uuid.UUID) ([]*ConsumptionView, error) {
	if _, err := q.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return q.consumptions.ListByBooking(ctx, bookingID)
}

func bookingFromView(v *BookingView) (*booking.Booking, error) {
	dates, err := stay.NewDateRange(v.StartDate, v.EndDate)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(v.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		v.ID,
		v.RoomID,
		v.ClientID,
		v.ClientName,
		dates,
		status,
		v.PricePerNight,
		v.Notes,
		v.Email,
		v.CreatedAt,
		v.UpdatedAt,
	), nil
}

func consumptionsFromViews(views []*ConsumptionView) []*consumption.Consumption {
	items := make([]*consumption.Consumption, len(views))
	for i, v := range views {
		items[i] = consumption.ReconstructConsumption(v.ID, v.BookingID, v.Description, v.Amount, v.ConsumedOn, v.CreatedAt)
	}
	return items
}
