// Package sqlc holds the SQL statements and row types of the service.
// It mirrors the layout sqlc emits with emit_methods_with_db_argument, so every
// method takes the DBTX to run on and callers choose pool or transaction.
package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New() *Queries {
	return &Queries{}
}

type Queries struct{}
