package expense

import (
	"strings"
	"time"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription  = errs.Mark(errs.New("expense description is required"), errs.ErrDomainValidation)
	ErrEmptyCategory     = errs.Mark(errs.New("expense category is required"), errs.ErrDomainValidation)
	ErrNonPositiveAmount = errs.Mark(errs.New("expense amount must be positive"), errs.ErrDomainValidation)
)

type Expense struct {
	id          uuid.UUID
	description string
	category    string
	amount      decimal.Decimal
	spentOn     time.Time
	notes       *string
	createdAt   time.Time
}

func NewExpense(description, category string, amount decimal.Decimal, spentOn time.Time, notes *string, now time.Time) (*Expense, error) {
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if spentOn.IsZero() {
		spentOn = now
	}
	return &Expense{
		id:          uuid.New(),
		description: description,
		category:    category,
		amount:      amount,
		spentOn:     stay.Midnight(spentOn),
		notes:       notes,
		createdAt:   now,
	}, nil
}

func ReconstructExpense(id uuid.UUID, description, category string, amount decimal.Decimal, spentOn time.Time, notes *string, createdAt time.Time) *Expense {
	return &Expense{
		id:          id,
		description: description,
		category:    category,
		amount:      amount,
		spentOn:     spentOn,
		notes:       notes,
		createdAt:   createdAt,
	}
}

// Total sums expense amounts without rounding.
func Total(items []*Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range items {
		sum = sum.Add(e.amount)
	}
	return sum
}

func (e *Expense) ID() uuid.UUID           { return e.id }
func (e *Expense) Description() string     { return e.description }
func (e *Expense) Category() string        { return e.category }
func (e *Expense) Amount() decimal.Decimal { return e.amount }
func (e *Expense) SpentOn() time.Time      { return e.spentOn }
func (e *Expense) Notes() *string          { return e.notes }
func (e *Expense) CreatedAt() time.Time    { return e.createdAt }
