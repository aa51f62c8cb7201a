package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 50 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// Within runs fn in a SERIALIZABLE transaction. Serialization failures and
// deadlocks restart fn from scratch, so fn must not keep state between calls.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// WithinReadOnly runs fn in a REPEATABLE READ, READ ONLY transaction so every
// statement sees the same snapshot.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := newPgTx(pgxTx, u)

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			u.logger.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	roomRepo         shared.RoomRepository
	bookingRepo      shared.BookingRepository
	consumptionRepo  shared.ConsumptionRepository
	invoiceRepo      shared.InvoiceRepository
	clientRepo       shared.ClientRepository
	staffRepo        shared.StaffRepository
	expenseRepo      shared.ExpenseRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
}

func newPgTx(dbtx sqlc.DBTX, u *PostgresUoW) *pgTx {
	return &pgTx{dbtx: dbtx, uow: u}
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := t.uow.q.LockRoom(ctx, t.dbtx, roomID); err != nil {
		return infra.WrapDBErr(t.uow.logger, "failed to lock room", err)
	}
	return nil
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.roomRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Consumptions() shared.ConsumptionRepository {
	if t.consumptionRepo == nil {
		t.consumptionRepo = repository.NewConsumptionRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.consumptionRepo
}

func (t *pgTx) Invoices() shared.InvoiceRepository {
	if t.invoiceRepo == nil {
		t.invoiceRepo = repository.NewInvoiceRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.invoiceRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.clientRepo
}

func (t *pgTx) Staff() shared.StaffRepository {
	if t.staffRepo == nil {
		t.staffRepo = repository.NewStaffRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.staffRepo
}

func (t *pgTx) Expenses() shared.ExpenseRepository {
	if t.expenseRepo == nil {
		t.expenseRepo = repository.NewExpenseRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.expenseRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.logger, t.uow.q, t.dbtx)
	}
	return t.userRepo
}
