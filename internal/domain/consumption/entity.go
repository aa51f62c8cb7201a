package consumption

import (
	"strings"
	"time"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxDescriptionLength = 300

var (
	ErrEmptyDescription   = errs.Mark(errs.New("consumption description is required"), errs.ErrDomainValidation)
	ErrDescriptionTooLong = errs.Mark(errs.New("consumption description is too long"), errs.ErrDomainValidation)
	ErrNonPositiveAmount  = errs.Mark(errs.New("consumption amount must be positive"), errs.ErrDomainValidation)
)

// Consumption is a charge added to a booking during the stay. It never changes once stored.
type Consumption struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	description string
	amount      decimal.Decimal
	consumedOn  time.Time
	createdAt   time.Time
}

func NewConsumption(bookingID uuid.UUID, description string, amount decimal.Decimal, consumedOn, now time.Time) (*Consumption, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if consumedOn.IsZero() {
		consumedOn = now
	}
	return &Consumption{
		id:          uuid.New(),
		bookingID:   bookingID,
		description: description,
		amount:      amount,
		consumedOn:  stay.Midnight(consumedOn),
		createdAt:   now,
	}, nil
}

func ReconstructConsumption(id, bookingID uuid.UUID, description string, amount decimal.Decimal, consumedOn, createdAt time.Time) *Consumption {
	return &Consumption{
		id:          id,
		bookingID:   bookingID,
		description: description,
		amount:      amount,
		consumedOn:  consumedOn,
		createdAt:   createdAt,
	}
}

func (c *Consumption) LineItem() stay.LineItem {
	return stay.LineItem{
		Kind:        stay.LineKindConsumption,
		Description: c.description,
		Amount:      c.amount,
	}
}

// LineItems keeps the order of the input slice.
func LineItems(items []*Consumption) []stay.LineItem {
	out := make([]stay.LineItem, 0, len(items))
	for _, c := range items {
		out = append(out, c.LineItem())
	}
	return out
}

func (c *Consumption) ID() uuid.UUID           { return c.id }
func (c *Consumption) BookingID() uuid.UUID    { return c.bookingID }
func (c *Consumption) Description() string     { return c.description }
func (c *Consumption) Amount() decimal.Decimal { return c.amount }
func (c *Consumption) ConsumedOn() time.Time   { return c.consumedOn }
func (c *Consumption) CreatedAt() time.Time    { return c.createdAt }
