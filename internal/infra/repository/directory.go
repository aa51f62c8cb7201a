package repository

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/expense"
	"hotel-backoffice/internal/domain/staff"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) error
	GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error)
}

type ClientRepository struct {
	logger  *slog.Logger
	queries ClientWriteQueries
	db      sqlc.DBTX
}

func NewClientRepository(logger *slog.Logger, queries ClientWriteQueries, db sqlc.DBTX) *ClientRepository {
	return &ClientRepository{logger: logger, queries: queries, db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	err := r.queries.CreateClient(ctx, r.db, sqlc.CreateClientParams{
		ID:         c.ID(),
		FullName:   c.FullName(),
		Email:      pgconv.StringPtrToPgtype(c.Email()),
		Phone:      pgconv.StringPtrToPgtype(c.Phone()),
		DocumentID: pgconv.StringPtrToPgtype(c.DocumentID()),
		CreatedAt:  pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := r.queries.GetClientByID(ctx, r.db, id); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapDBErr(r.logger, "failed to look up client", err)
	}
	return true, nil
}

type StaffWriteQueries interface {
	CreateEmployee(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEmployeeParams) error
	GetEmployeeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Employees, error)
	CreateShift(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateShiftParams) error
}

type StaffRepository struct {
	logger  *slog.Logger
	queries StaffWriteQueries
	db      sqlc.DBTX
}

func NewStaffRepository(logger *slog.Logger, queries StaffWriteQueries, db sqlc.DBTX) *StaffRepository {
	return &StaffRepository{logger: logger, queries: queries, db: db}
}

func (r *StaffRepository) CreateEmployee(ctx context.Context, e *staff.Employee) error {
	err := r.queries.CreateEmployee(ctx, r.db, sqlc.CreateEmployeeParams{
		ID:        e.ID(),
		FullName:  e.FullName(),
		Role:      e.Role(),
		Email:     pgconv.StringPtrToPgtype(e.Email()),
		IsActive:  e.IsActive(),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt()),
	})
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to create employee", err)
	}
	return nil
}

func (r *StaffRepository) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	row, err := r.queries.GetEmployeeByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to get employee", err)
	}
	return staff.ReconstructEmployee(
		row.ID,
		row.FullName,
		row.Role,
		pgconv.StringPtrFromPgtype(row.Email),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func (r *StaffRepository) CreateShift(ctx context.Context, s *staff.Shift) error {
	err := r.queries.CreateShift(ctx, r.db, sqlc.CreateShiftParams{
		ID:         s.ID(),
		EmployeeID: s.EmployeeID(),
		ShiftDate:  pgconv.DateToPgtype(s.ShiftDate()),
		StartsAt:   pgconv.TimeToPgtype(s.StartsAt()),
		EndsAt:     pgconv.TimeToPgtype(s.EndsAt()),
		Notes:      pgconv.StringPtrToPgtype(s.Notes()),
		CreatedAt:  pgconv.TimeToPgtype(s.CreatedAt()),
	})
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to create shift", err)
	}
	return nil
}

type ExpenseWriteQueries interface {
	CreateExpense(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExpenseParams) error
}

type ExpenseRepository struct {
	logger  *slog.Logger
	queries ExpenseWriteQueries
	db      sqlc.DBTX
}

func NewExpenseRepository(logger *slog.Logger, queries ExpenseWriteQueries, db sqlc.DBTX) *ExpenseRepository {
	return &ExpenseRepository{logger: logger, queries: queries, db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	err := r.queries.CreateExpense(ctx, r.db, sqlc.CreateExpenseParams{
		ID:          e.ID(),
		Description: e.Description(),
		Category:    e.Category(),
		Amount:      pgconv.DecimalToNumeric(e.Amount()),
		SpentOn:     pgconv.DateToPgtype(e.SpentOn()),
		Notes:       pgconv.StringPtrToPgtype(e.Notes()),
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt()),
	})
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to create expense", err)
	}
	return nil
}
