package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Rooms struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	PricePerNight  pgtype.Numeric     `json:"price_per_night"`
	CleaningStatus string             `json:"cleaning_status"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Bookings struct {
	ID            uuid.UUID          `json:"id"`
	RoomID        uuid.UUID          `json:"room_id"`
	ClientID      pgtype.UUID        `json:"client_id"`
	ClientName    string             `json:"client_name"`
	StartDate     pgtype.Date        `json:"start_date"`
	EndDate       pgtype.Date        `json:"end_date"`
	Status        string             `json:"status"`
	PricePerNight pgtype.Numeric     `json:"price_per_night"`
	Notes         pgtype.Text        `json:"notes"`
	Email         pgtype.Text        `json:"email"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type Consumptions struct {
	ID          uuid.UUID          `json:"id"`
	BookingID   uuid.UUID          `json:"booking_id"`
	Description string             `json:"description"`
	Amount      pgtype.Numeric     `json:"amount"`
	ConsumedOn  pgtype.Date        `json:"consumed_on"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Invoices struct {
	ID            uuid.UUID          `json:"id"`
	BookingID     uuid.UUID          `json:"booking_id"`
	Number        string             `json:"number"`
	IssuedOn      pgtype.Date        `json:"issued_on"`
	Subtotal      pgtype.Numeric     `json:"subtotal"`
	Tax           pgtype.Numeric     `json:"tax"`
	Total         pgtype.Numeric     `json:"total"`
	TaxRate       pgtype.Numeric     `json:"tax_rate"`
	LineItems     []byte             `json:"line_items"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type Clients struct {
	ID         uuid.UUID          `json:"id"`
	FullName   string             `json:"full_name"`
	Email      pgtype.Text        `json:"email"`
	Phone      pgtype.Text        `json:"phone"`
	DocumentID pgtype.Text        `json:"document_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Employees struct {
	ID        uuid.UUID          `json:"id"`
	FullName  string             `json:"full_name"`
	Role      string             `json:"role"`
	Email     pgtype.Text        `json:"email"`
	IsActive  bool               `json:"is_active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Shifts struct {
	ID         uuid.UUID          `json:"id"`
	EmployeeID uuid.UUID          `json:"employee_id"`
	ShiftDate  pgtype.Date        `json:"shift_date"`
	StartsAt   pgtype.Timestamptz `json:"starts_at"`
	EndsAt     pgtype.Timestamptz `json:"ends_at"`
	Notes      pgtype.Text        `json:"notes"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Expenses struct {
	ID          uuid.UUID          `json:"id"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Amount      pgtype.Numeric     `json:"amount"`
	SpentOn     pgtype.Date        `json:"spent_on"`
	Notes       pgtype.Text        `json:"notes"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
