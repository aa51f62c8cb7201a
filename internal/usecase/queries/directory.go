package queries

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/expense"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type ClientQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context, search string, limit int) ([]*ClientView, error)
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context, search string, limit int) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrClientNotFound)
	}
	return view, nil
}

func (q *clientQueriesImpl) List(ctx context.Context, search string, limit int) ([]*ClientView, error) {
	return q.store.List(ctx, search, clampLimit(limit))
}

type StaffQueries interface {
	ListEmployees(ctx context.Context, activeOnly bool) ([]*EmployeeView, error)
	ListShifts(ctx context.Context, filter ShiftFilter) ([]*ShiftView, error)
}

type StaffReadStore interface {
	ListEmployees(ctx context.Context, activeOnly bool) ([]*EmployeeView, error)
	ListShifts(ctx context.Context, filter ShiftFilter) ([]*ShiftView, error)
}

type staffQueriesImpl struct {
	store StaffReadStore
}

func NewStaffQueries(store StaffReadStore) StaffQueries {
	return &staffQueriesImpl{store: store}
}

func (q *staffQueriesImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]*EmployeeView, error) {
	return q.store.ListEmployees(ctx, activeOnly)
}

func (q *staffQueriesImpl) ListShifts(ctx context.Context, filter ShiftFilter) ([]*ShiftView, error) {
	if err := validateWindow(filter.From, filter.To); err != nil {
		return nil, err
	}
	return q.store.ListShifts(ctx, filter)
}

type ExpenseQueries interface {
	Report(ctx context.Context, filter ExpenseFilter) (*ExpenseReport, error)
}

type ExpenseReadStore interface {
	List(ctx context.Context, filter ExpenseFilter) ([]*ExpenseView, error)
}

type expenseQueriesImpl struct {
	store ExpenseReadStore
}

func NewExpenseQueries(store ExpenseReadStore) ExpenseQueries {
	return &expenseQueriesImpl{store: store}
}

// Report lists expenses with their exact decimal sum.
func (q *expenseQueriesImpl) Report(ctx context.Context, filter ExpenseFilter) (*ExpenseReport, error) {
	if err := validateWindow(filter.From, filter.To); err != nil {
		return nil, err
	}
	items, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	domainItems := make([]*expense.Expense, len(items))
	for i, v := range items {
		domainItems[i] = expense.ReconstructExpense(v.ID, v.Description, v.Category, v.Amount, v.SpentOn, v.Notes, v.CreatedAt)
	}

	return &ExpenseReport{Items: items, Total: expense.Total(domainItems)}, nil
}

// validateWindow rejects an inclusive date window whose end comes before its start.
func validateWindow(from, to *time.Time) error {
	if from == nil || to == nil {
		return nil
	}
	if stay.Midnight(*to).Before(stay.Midnight(*from)) {
		return errs.Mark(errs.New("to date must not be before from date"), errs.ErrInvalidRange)
	}
	return nil
}
