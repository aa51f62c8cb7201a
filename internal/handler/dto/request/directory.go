package request

import (
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/expense"
	"hotel-backoffice/internal/domain/staff"
	"hotel-backoffice/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	FullName   string  `json:"full_name" binding:"required,max=120"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string `json:"phone,omitempty" binding:"omitempty,max=40"`
	DocumentID *string `json:"document_id,omitempty" binding:"omitempty,max=60"`
}

func (r *CreateClientRequest) ToDomain(now time.Time) (*client.Client, error) {
	return client.NewClient(r.FullName, r.Email, r.Phone, r.DocumentID, now)
}

type ListClientsQuery struct {
	Search string `form:"search" binding:"omitempty,max=120"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name" binding:"required,max=120"`
	Role     string  `json:"role" binding:"required,max=60"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r *CreateEmployeeRequest) ToDomain(now time.Time) (*staff.Employee, error) {
	return staff.NewEmployee(r.FullName, r.Role, r.Email, now)
}

type CreateShiftRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
	Notes      *string   `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r *CreateShiftRequest) ToDomain(employee *staff.Employee, now time.Time) (*staff.Shift, error) {
	return staff.NewShift(employee, r.StartsAt, r.EndsAt, r.Notes, now)
}

type ListShiftsQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	From       string `form:"from" binding:"omitempty,isodate"`
	To         string `form:"to" binding:"omitempty,isodate"`
}

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required,max=200"`
	Category    string          `json:"category" binding:"required,max=60"`
	Amount      decimal.Decimal `json:"amount" binding:"decimalgt0"`
	SpentOn     string          `json:"spent_on" binding:"required,isodate"`
	Notes       *string         `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r *CreateExpenseRequest) ToDomain(now time.Time) (*expense.Expense, error) {
	spentOn, err := stay.ParseDate(r.SpentOn)
	if err != nil {
		return nil, err
	}
	return expense.NewExpense(r.Description, r.Category, r.Amount, spentOn, r.Notes, now)
}

type ListExpensesQuery struct {
	From     string `form:"from" binding:"omitempty,isodate"`
	To       string `form:"to" binding:"omitempty,isodate"`
	Category string `form:"category" binding:"omitempty,max=60"`
}
