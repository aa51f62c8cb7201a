package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createClient = `-- name: CreateClient :exec
INSERT INTO clients (id, full_name, email, phone, document_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateClientParams struct {
	ID         uuid.UUID          `json:"id"`
	FullName   string             `json:"full_name"`
	Email      pgtype.Text        `json:"email"`
	Phone      pgtype.Text        `json:"phone"`
	DocumentID pgtype.Text        `json:"document_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateClient(ctx context.Context, db DBTX, arg CreateClientParams) error {
	_, err := db.Exec(ctx, createClient,
		arg.ID,
		arg.FullName,
		arg.Email,
		arg.Phone,
		arg.DocumentID,
		arg.CreatedAt,
	)
	return err
}

const getClientByID = `-- name: GetClientByID :one
SELECT id, full_name, email, phone, document_id, created_at
FROM clients
WHERE id = $1
`

func (q *Queries) GetClientByID(ctx context.Context, db DBTX, id uuid.UUID) (Clients, error) {
	row := db.QueryRow(ctx, getClientByID, id)
	var i Clients
	err := row.Scan(
		&i.ID,
		&i.FullName,
		&i.Email,
		&i.Phone,
		&i.DocumentID,
		&i.CreatedAt,
	)
	return i, err
}

const listClients = `-- name: ListClients :many
SELECT id, full_name, email, phone, document_id, created_at
FROM clients
WHERE ($1::text IS NULL
       OR full_name ILIKE '%' || $1::text || '%'
       OR email ILIKE '%' || $1::text || '%'
       OR document_id = $1::text)
ORDER BY full_name, id
LIMIT $2
`

type ListClientsParams struct {
	Search pgtype.Text `json:"search"`
	Limit  int32       `json:"limit"`
}

func (q *Queries) ListClients(ctx context.Context, db DBTX, arg ListClientsParams) ([]Clients, error) {
	rows, err := db.Query(ctx, listClients, arg.Search, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Clients
	for rows.Next() {
		var i Clients
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.Email,
			&i.Phone,
			&i.DocumentID,
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
