package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createRoom = `-- name: CreateRoom :exec
INSERT INTO rooms (id, name, category, price_per_night, cleaning_status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
`

type CreateRoomParams struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	PricePerNight  pgtype.Numeric     `json:"price_per_night"`
	CleaningStatus string             `json:"cleaning_status"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg CreateRoomParams) error {
	_, err := db.Exec(ctx, createRoom,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.PricePerNight,
		arg.CleaningStatus,
		arg.CreatedAt,
	)
	return err
}

const getRoomByID = `-- name: GetRoomByID :one
SELECT id, name, category, price_per_night, cleaning_status, created_at, updated_at
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	row := db.QueryRow(ctx, getRoomByID, id)
	return scanRoom(row)
}

const getRoomByIDForUpdate = `-- name: GetRoomByIDForUpdate :one
SELECT id, name, category, price_per_night, cleaning_status, created_at, updated_at
FROM rooms
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetRoomByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	row := db.QueryRow(ctx, getRoomByIDForUpdate, id)
	return scanRoom(row)
}

const listRooms = `-- name: ListRooms :many
SELECT id, name, category, price_per_night, cleaning_status, created_at, updated_at
FROM rooms
WHERE ($1::text IS NULL OR category = $1::text)
  AND ($2::text IS NULL OR cleaning_status = $2::text)
ORDER BY name
`

type ListRoomsParams struct {
	Category       pgtype.Text `json:"category"`
	CleaningStatus pgtype.Text `json:"cleaning_status"`
}

func (q *Queries) ListRooms(ctx context.Context, db DBTX, arg ListRoomsParams) ([]Rooms, error) {
	rows, err := db.Query(ctx, listRooms, arg.Category, arg.CleaningStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rooms
	for rows.Next() {
		i, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRoom = `-- name: UpdateRoom :execrows
UPDATE rooms
SET price_per_night = $2, cleaning_status = $3, updated_at = $4
WHERE id = $1
`

type UpdateRoomParams struct {
	ID             uuid.UUID          `json:"id"`
	PricePerNight  pgtype.Numeric     `json:"price_per_night"`
	CleaningStatus string             `json:"cleaning_status"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg UpdateRoomParams) (int64, error) {
	result, err := db.Exec(ctx, updateRoom, arg.ID, arg.PricePerNight, arg.CleaningStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockRoom = `-- name: LockRoom :exec
SELECT pg_advisory_xact_lock(hashtext($1::text))
`

// LockRoom serialises booking writes for one room until the transaction ends.
func (q *Queries) LockRoom(ctx context.Context, db DBTX, roomID uuid.UUID) error {
	_, err := db.Exec(ctx, lockRoom, roomID.String())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (Rooms, error) {
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.PricePerNight,
		&i.CleaningStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
