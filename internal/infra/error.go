package infra

import (
	"errors"
	"log/slog"

	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// Not-found is an expected outcome for lookups; keep it out of the error log.
	if kind == KindNotFound {
		slogger.Debug("Repository miss: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	var constraint string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

// WrapDBErr picks the kind from the driver error and wraps it.
func WrapDBErr(slogger *slog.Logger, msg string, err error) error {
	return WrapRepoErr(slogger, KindOf(err), msg, err)
}

// KindOf returns the kind of an already wrapped error, or maps
// pgx/PostgreSQL errors to repository kinds.
func KindOf(err error) RepositoryErrorKind {
	var repoErr RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return KindForeignKeyViolated
		case pgErrCodeExclusionViolation:
			return KindExclusionViolated
		case pgErrCodeCheckViolation:
			return KindCheckViolated
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)

// ConstraintInvoiceBooking is the unique constraint on invoices.booking_id.
const ConstraintInvoiceBooking = "invoices_booking_id_key"

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
	pgErrCodeExclusionViolation  = "23P01"
)
