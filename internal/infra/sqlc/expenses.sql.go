package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createExpense = `-- name: CreateExpense :exec
INSERT INTO expenses (id, description, category, amount, spent_on, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateExpenseParams struct {
	ID          uuid.UUID          `json:"id"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Amount      pgtype.Numeric     `json:"amount"`
	SpentOn     pgtype.Date        `json:"spent_on"`
	Notes       pgtype.Text        `json:"notes"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateExpense(ctx context.Context, db DBTX, arg CreateExpenseParams) error {
	_, err := db.Exec(ctx, createExpense,
		arg.ID,
		arg.Description,
		arg.Category,
		arg.Amount,
		arg.SpentOn,
		arg.Notes,
		arg.CreatedAt,
	)
	return err
}

const listExpenses = `-- name: ListExpenses :many
SELECT id, description, category, amount, spent_on, notes, created_at
FROM expenses
WHERE ($1::date IS NULL OR spent_on >= $1::date)
  AND ($2::date IS NULL OR spent_on < $2::date)
  AND ($3::text IS NULL OR category = $3::text)
ORDER BY spent_on, created_at, id
`

type ListExpensesParams struct {
	From     pgtype.Date `json:"from"`
	To       pgtype.Date `json:"to"`
	Category pgtype.Text `json:"category"`
}

func (q *Queries) ListExpenses(ctx context.Context, db DBTX, arg ListExpensesParams) ([]Expenses, error) {
	rows, err := db.Query(ctx, listExpenses, arg.From, arg.To, arg.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expenses
	for rows.Next() {
		var i Expenses
		if err := rows.Scan(
			&i.ID,
			&i.Description,
			&i.Category,
			&i.Amount,
			&i.SpentOn,
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
