package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	DocumentID *string   `json:"document_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ShiftResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ShiftDate    string    `json:"shift_date"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Notes        *string   `json:"notes,omitempty"`
}

type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	SpentOn     string    `json:"spent_on"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExpenseReportResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total string            `json:"total"`
}

func FromClientView(v *queries.ClientView) (*ClientResponse, error) {
	var out ClientResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromClientViews(vs []*queries.ClientView) ([]ClientResponse, error) {
	out := make([]ClientResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromEmployeeViews(vs []*queries.EmployeeView) ([]EmployeeResponse, error) {
	out := make([]EmployeeResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromShiftViews(vs []*queries.ShiftView) ([]ShiftResponse, error) {
	out := make([]ShiftResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromExpenseReport(r *queries.ExpenseReport) (*ExpenseReportResponse, error) {
	out := ExpenseReportResponse{
		Items: make([]ExpenseResponse, 0, len(r.Items)),
		Total: r.Total.StringFixed(2),
	}
	if err := copyInto(&out.Items, r.Items); err != nil {
		return nil, err
	}
	return &out, nil
}
