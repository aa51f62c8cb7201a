package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createConsumption = `-- name: CreateConsumption :exec
INSERT INTO consumptions (id, booking_id, description, amount, consumed_on, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateConsumptionParams struct {
	ID          uuid.UUID          `json:"id"`
	BookingID   uuid.UUID          `json:"booking_id"`
	Description string             `json:"description"`
	Amount      pgtype.Numeric     `json:"amount"`
	ConsumedOn  pgtype.Date        `json:"consumed_on"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateConsumption(ctx context.Context, db DBTX, arg CreateConsumptionParams) error {
	_, err := db.Exec(ctx, createConsumption,
		arg.ID,
		arg.BookingID,
		arg.Description,
		arg.Amount,
		arg.ConsumedOn,
		arg.CreatedAt,
	)
	return err
}

const listConsumptionsByBooking = `-- name: ListConsumptionsByBooking :many
SELECT id, booking_id, description, amount, consumed_on, created_at
FROM consumptions
WHERE booking_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListConsumptionsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Consumptions, error) {
	rows, err := db.Query(ctx, listConsumptionsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Consumptions
	for rows.Next() {
		var i Consumptions
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.Description,
			&i.Amount,
			&i.ConsumedOn,
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
