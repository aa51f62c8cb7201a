package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createEmployee = `-- name: CreateEmployee :exec
INSERT INTO employees (id, full_name, role, email, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateEmployeeParams struct {
	ID        uuid.UUID          `json:"id"`
	FullName  string             `json:"full_name"`
	Role      string             `json:"role"`
	Email     pgtype.Text        `json:"email"`
	IsActive  bool               `json:"is_active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateEmployee(ctx context.Context, db DBTX, arg CreateEmployeeParams) error {
	_, err := db.Exec(ctx, createEmployee,
		arg.ID,
		arg.FullName,
		arg.Role,
		arg.Email,
		arg.IsActive,
		arg.CreatedAt,
	)
	return err
}

const getEmployeeByID = `-- name: GetEmployeeByID :one
SELECT id, full_name, role, email, is_active, created_at
FROM employees
WHERE id = $1
`

func (q *Queries) GetEmployeeByID(ctx context.Context, db DBTX, id uuid.UUID) (Employees, error) {
	row := db.QueryRow(ctx, getEmployeeByID, id)
	var i Employees
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.Role,
		&i.Email,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const listEmployees = `-- name: ListEmployees :many
SELECT id, full_name, role, email, is_active, created_at
FROM employees
WHERE (NOT $1::boolean OR is_active)
ORDER BY full_name, id
`

func (q *Queries) ListEmployees(ctx context.Context, db DBTX, activeOnly bool) ([]Employees, error) {
	rows, err := db.Query(ctx, listEmployees, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Employees
	for rows.Next() {
		var i Employees
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Role,
			&i.Email,
			&i.IsActive,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createShift = `-- name: CreateShift :exec
INSERT INTO shifts (id, employee_id, shift_date, starts_at, ends_at, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateShiftParams struct {
	ID         uuid.UUID          `json:"id"`
	EmployeeID uuid.UUID          `json:"employee_id"`
	ShiftDate  pgtype.Date        `json:"shift_date"`
	StartsAt   pgtype.Timestamptz `json:"starts_at"`
	EndsAt     pgtype.Timestamptz `json:"ends_at"`
	Notes      pgtype.Text        `json:"notes"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateShift(ctx context.Context, db DBTX, arg CreateShiftParams) error {
	_, err := db.Exec(ctx, createShift,
		arg.ID,
		arg.EmployeeID,
		arg.ShiftDate,
		arg.StartsAt,
		arg.EndsAt,
		arg.Notes,
		arg.CreatedAt,
	)
	return err
}

const listShifts = `-- name: ListShifts :many
SELECT s.id, s.employee_id, e.full_name AS employee_name, s.shift_date,
       s.starts_at, s.ends_at, s.notes, s.created_at
FROM shifts s
JOIN employees e ON e.id = s.employee_id
WHERE ($1::uuid IS NULL OR s.employee_id = $1::uuid)
  AND ($2::date IS NULL OR s.shift_date >= $2::date)
  AND ($3::date IS NULL OR s.shift_date < $3::date)
ORDER BY s.starts_at, e.full_name
`

type ListShiftsParams struct {
	EmployeeID pgtype.UUID `json:"employee_id"`
	From       pgtype.Date `json:"from"`
	To         pgtype.Date `json:"to"`
}

type ListShiftsRow struct {
	ID           uuid.UUID          `json:"id"`
	EmployeeID   uuid.UUID          `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	ShiftDate    pgtype.Date        `json:"shift_date"`
	StartsAt     pgtype.Timestamptz `json:"starts_at"`
	EndsAt       pgtype.Timestamptz `json:"ends_at"`
	Notes        pgtype.Text        `json:"notes"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) ListShifts(ctx context.Context, db DBTX, arg ListShiftsParams) ([]ListShiftsRow, error) {
	rows, err := db.Query(ctx, listShifts, arg.EmployeeID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListShiftsRow
	for rows.Next() {
		var i ListShiftsRow
		if err := rows.Scan(
			&i.ID,
			&i.EmployeeID,
			&i.EmployeeName,
			&i.ShiftDate,
			&i.StartsAt,
			&i.EndsAt,
			&i.Notes,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
