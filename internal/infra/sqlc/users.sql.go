package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createUser = `-- name: CreateUser :one
INSERT INTO users (email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateUserParams struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	IsActive     bool   `json:"is_active"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser, arg.Email, arg.PasswordHash, arg.Role, arg.IsActive)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
FROM users
WHERE email = $1
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	return scanUser(row)
}

const findUserByID = `-- name: FindUserByID :one
SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, findUserByID, id)
	return scanUser(row)
}

const listUsers = `-- name: ListUsers :many
SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
FROM users
WHERE ($1::text IS NULL OR role = $1::text)
ORDER BY email
LIMIT $2
`

type ListUsersParams struct {
	Role  pgtype.Text `json:"role"`
	Limit int32       `json:"limit"`
}

func (q *Queries) ListUsers(ctx context.Context, db DBTX, arg ListUsersParams) ([]Users, error) {
	rows, err := db.Query(ctx, listUsers, arg.Role, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Users
	for rows.Next() {
		i, err := scanUser(rows)
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

func scanUser(row rowScanner) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateUserLastLogin = `-- name: UpdateUserLastLogin :exec
UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1
`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id)
	return err
}
