package queries

import (
	"time"

	"hotel-backoffice/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type RoomView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	PricePerNight  decimal.Decimal `json:"price_per_night"`
	CleaningStatus string          `json:"cleaning_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type RoomFilter struct {
	Category       *string
	CleaningStatus *string
}

// AvailabilityView answers whether a room is free for [Start, End).
type AvailabilityView struct {
	RoomID      uuid.UUID   `json:"room_id"`
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Available   bool        `json:"available"`
	Nights      int         `json:"nights"`
	ConflictIDs []uuid.UUID `json:"conflict_ids,omitempty"`
}

type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	RoomID        uuid.UUID       `json:"room_id"`
	RoomName      string          `json:"room_name"`
	ClientID      *uuid.UUID      `json:"client_id,omitempty"`
	ClientName    string          `json:"client_name"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Nights        int             `json:"nights"`
	Status        string          `json:"status"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Notes         *string         `json:"notes,omitempty"`
	Email         *string         `json:"email,omitempty"`
	InvoiceID     *uuid.UUID      `json:"invoice_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BookingFilter selects bookings whose stay overlaps [From, To) when both are set.
type BookingFilter struct {
	RoomID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Status *string
	Limit  int
}

// QuoteView is the invoice preview of a booking.
type QuoteView struct {
	BookingID uuid.UUID       `json:"booking_id"`
	Nights    int             `json:"nights"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	LineItems []stay.LineItem `json:"line_items"`
}

type ConsumptionView struct {
	ID          uuid.UUID       `json:"id"`
	BookingID   uuid.UUID       `json:"booking_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ConsumedOn  time.Time       `json:"consumed_on"`
	CreatedAt   time.Time       `json:"created_at"`
}

type InvoiceView struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	Number        string          `json:"number"`
	IssuedOn      time.Time       `json:"issued_on"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	LineItems     []stay.LineItem `json:"line_items"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DateWindow is an inclusive [From, To] filter on a single date column.
type DateWindow struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type ClientView struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	DocumentID *string   `json:"document_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type EmployeeView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ShiftView struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ShiftDate    time.Time `json:"shift_date"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ShiftFilter struct {
	EmployeeID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

type ExpenseView struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	SpentOn     time.Time       `json:"spent_on"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ExpenseFilter struct {
	From     *time.Time
	To       *time.Time
	Category *string
}

type ExpenseReport struct {
	Items []*ExpenseView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type UserFilter struct {
	Role  *string
	Limit int
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
