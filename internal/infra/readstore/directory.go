package readstore

import (
	"context"
	"log/slog"
	"strings"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ClientReadQueries interface {
	GetClientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clients, error)
	ListClients(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientsParams) ([]sqlc.Clients, error)
}

type ClientReadStore struct {
	logger  *slog.Logger
	queries ClientReadQueries
	db      sqlc.DBTX
}

func NewClientReadStore(logger *slog.Logger, queries ClientReadQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{logger: logger, queries: queries, db: db}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find client by ID", err)
	}
	return clientView(row), nil
}

// List matches search as a substring of name or email, or as an exact document ID.
func (r *ClientReadStore) List(ctx context.Context, search string, limit int) ([]*queries.ClientView, error) {
	var pattern pgtype.Text
	if s := strings.TrimSpace(search); s != "" {
		pattern = pgconv.StringToPgtype(s)
	}
	rows, err := r.queries.ListClients(ctx, r.db, sqlc.ListClientsParams{
		Search: pattern,
		Limit:  int32(limit), // #nosec G115 -- clamped by the query layer
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list clients", err)
	}
	views := make([]*queries.ClientView, len(rows))
	for i, row := range rows {
		views[i] = clientView(row)
	}
	return views, nil
}

func clientView(row sqlc.Clients) *queries.ClientView {
	return &queries.ClientView{
		ID:         row.ID,
		FullName:   row.FullName,
		Email:      pgconv.StringPtrFromPgtype(row.Email),
		Phone:      pgconv.StringPtrFromPgtype(row.Phone),
		DocumentID: pgconv.StringPtrFromPgtype(row.DocumentID),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

type StaffReadQueries interface {
	ListEmployees(ctx context.Context, db sqlc.DBTX, activeOnly bool) ([]sqlc.Employees, error)
	ListShifts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListShiftsParams) ([]sqlc.ListShiftsRow, error)
}

type StaffReadStore struct {
	logger  *slog.Logger
	queries StaffReadQueries
	db      sqlc.DBTX
}

func NewStaffReadStore(logger *slog.Logger, queries StaffReadQueries, db sqlc.DBTX) *StaffReadStore {
	return &StaffReadStore{logger: logger, queries: queries, db: db}
}

func (r *StaffReadStore) ListEmployees(ctx context.Context, activeOnly bool) ([]*queries.EmployeeView, error) {
	rows, err := r.queries.ListEmployees(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list employees", err)
	}
	views := make([]*queries.EmployeeView, len(rows))
	for i, row := range rows {
		views[i] = &queries.EmployeeView{
			ID:        row.ID,
			FullName:  row.FullName,
			Role:      row.Role,
			Email:     pgconv.StringPtrFromPgtype(row.Email),
			IsActive:  row.IsActive,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *StaffReadStore) ListShifts(ctx context.Context, filter queries.ShiftFilter) ([]*queries.ShiftView, error) {
	rows, err := r.queries.ListShifts(ctx, r.db, sqlc.ListShiftsParams{
		EmployeeID: pgconv.UUIDPtrToPgtype(filter.EmployeeID),
		From:       pgconv.DatePtrToPgtype(filter.From),
		To:         pgconv.DatePtrToPgtype(filter.To),
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list shifts", err)
	}
	views := make([]*queries.ShiftView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ShiftView{
			ID:           row.ID,
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			ShiftDate:    pgconv.DateFromPgtype(row.ShiftDate),
			StartsAt:     pgconv.TimeFromPgtype(row.StartsAt),
			EndsAt:       pgconv.TimeFromPgtype(row.EndsAt),
			Notes:        pgconv.StringPtrFromPgtype(row.Notes),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

type ExpenseReadQueries interface {
	ListExpenses(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpensesParams) ([]sqlc.Expenses, error)
}

type ExpenseReadStore struct {
	logger  *slog.Logger
	queries ExpenseReadQueries
	db      sqlc.DBTX
}

func NewExpenseReadStore(logger *slog.Logger, queries ExpenseReadQueries, db sqlc.DBTX) *ExpenseReadStore {
	return &ExpenseReadStore{logger: logger, queries: queries, db: db}
}

func (r *ExpenseReadStore) List(ctx context.Context, filter queries.ExpenseFilter) ([]*queries.ExpenseView, error) {
	rows, err := r.queries.ListExpenses(ctx, r.db, sqlc.ListExpensesParams{
		From:     pgconv.DatePtrToPgtype(filter.From),
		To:       pgconv.DatePtrToPgtype(filter.To),
		Category: pgconv.StringPtrToPgtype(filter.Category),
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list expenses", err)
	}
	views := make([]*queries.ExpenseView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode expense amount", err)
		}
		views = append(views, &queries.ExpenseView{
			ID:          row.ID,
			Description: row.Description,
			Category:    row.Category,
			Amount:      amount,
			SpentOn:     pgconv.DateFromPgtype(row.SpentOn),
			Notes:       pgconv.StringPtrFromPgtype(row.Notes),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
