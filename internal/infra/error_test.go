//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"hotel-backoffice/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindExclusionViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.KindOf(tt.err))
		})
	}
}

func TestWrapDBErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}

	err := infra.WrapDBErr(logger, "failed to create booking", pgErr)

	assert.True(t, infra.IsKind(err, infra.KindExclusionViolated))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Equal(t, "bookings_no_overlap", infra.ConstraintOf(err))
	assert.ErrorAs(t, err, new(*pgconn.PgError))
	assert.Contains(t, err.Error(), "EXCLUSION_VIOLATED: failed to create booking")
}
