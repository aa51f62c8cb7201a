package invoice

import (
	"fmt"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPaymentMethod = errs.Mark(errs.New("invalid payment method"), errs.ErrDomainValidation)

// Invoice is issued once per checked-out booking and is never modified afterwards.
type Invoice struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	number        string
	issuedOn      time.Time
	subtotal      decimal.Decimal
	tax           decimal.Decimal
	total         decimal.Decimal
	taxRate       decimal.Decimal
	lineItems     []stay.LineItem
	paymentMethod PaymentMethod
	createdAt     time.Time
}

// Quote previews the totals of a booking. Amounts are rounded to 2 decimals.
func Quote(b *booking.Booking, roomName string, items []*consumption.Consumption, taxRate decimal.Decimal) stay.InvoiceTotals {
	cost := b.StayCost()
	stayLine := stay.LineItem{
		Kind:        stay.LineKindStay,
		Description: StayDescription(roomName, b.Dates(), cost.Nights),
		Amount:      cost.Amount,
	}
	return stay.BuildInvoice(stayLine, consumption.LineItems(items), taxRate).Rounded()
}

// EnsureInvoiceable fails with ErrPreconditionFailed unless b is checked out.
func EnsureInvoiceable(b *booking.Booking) error {
	if b.Status() != booking.StatusCheckedOut {
		return errs.Mark(
			errs.Newf("booking %s is %s", b.ID(), b.Status()),
			errs.ErrPreconditionFailed,
		)
	}
	return nil
}

// Issue builds the invoice of a checked-out booking.
func Issue(
	b *booking.Booking,
	roomName string,
	items []*consumption.Consumption,
	taxRate decimal.Decimal,
	number string,
	method PaymentMethod,
	now time.Time,
) (*Invoice, error) {
	if err := EnsureInvoiceable(b); err != nil {
		return nil, err
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return nil, err
	}

	totals := Quote(b, roomName, items, taxRate)
	return &Invoice{
		id:            uuid.New(),
		bookingID:     b.ID(),
		number:        number,
		issuedOn:      stay.Midnight(now),
		subtotal:      totals.Subtotal,
		tax:           totals.Tax,
		total:         totals.Total,
		taxRate:       taxRate,
		lineItems:     totals.LineItems,
		paymentMethod: method,
		createdAt:     now,
	}, nil
}

func ReconstructInvoice(
	id, bookingID uuid.UUID,
	number string,
	issuedOn time.Time,
	subtotal, tax, total, taxRate decimal.Decimal,
	lineItems []stay.LineItem,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		bookingID:     bookingID,
		number:        number,
		issuedOn:      issuedOn,
		subtotal:      subtotal,
		tax:           tax,
		total:         total,
		taxRate:       taxRate,
		lineItems:     lineItems,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}
}

func StayDescription(roomName string, dates stay.DateRange, nights int) string {
	unit := "nights"
	if nights == 1 {
		unit = "night"
	}
	return fmt.Sprintf("%s: %d %s (%s to %s)",
		roomName, nights, unit, dates.Start().Format(stay.DateLayout), dates.End().Format(stay.DateLayout))
}

func (i *Invoice) ID() uuid.UUID                { return i.id }
func (i *Invoice) BookingID() uuid.UUID         { return i.bookingID }
func (i *Invoice) Number() string               { return i.number }
func (i *Invoice) IssuedOn() time.Time          { return i.issuedOn }
func (i *Invoice) Subtotal() decimal.Decimal    { return i.subtotal }
func (i *Invoice) Tax() decimal.Decimal         { return i.tax }
func (i *Invoice) Total() decimal.Decimal       { return i.total }
func (i *Invoice) TaxRate() decimal.Decimal     { return i.taxRate }
func (i *Invoice) LineItems() []stay.LineItem   { return i.lineItems }
func (i *Invoice) PaymentMethod() PaymentMethod { return i.paymentMethod }
func (i *Invoice) CreatedAt() time.Time         { return i.createdAt }
