package shared

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/expense"
	"hotel-backoffice/internal/domain/invoice"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/staff"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: SERIALIZABLE transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: single-snapshot read-only transaction for multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Consumptions() ConsumptionRepository
	Invoices() InvoiceRepository
	Clients() ClientRepository
	Staff() StaffRepository
	Expenses() ExpenseRepository
	Notifications() NotificationRepository
	Users() UserRepository
	// LockRoom blocks other booking writers of the same room until the transaction ends.
	LockRoom(ctx context.Context, roomID uuid.UUID) error
	DB() sqlc.DBTX
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReservedIntervals lists the room's holding bookings that touch window.
	ReservedIntervals(ctx context.Context, roomID uuid.UUID, window stay.DateRange) ([]stay.ReservedInterval, error)
}

type ConsumptionRepository interface {
	Create(ctx context.Context, c *consumption.Consumption) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*consumption.Consumption, error)
}

type InvoiceRepository interface {
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, inv *invoice.Invoice) error
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type StaffRepository interface {
	CreateEmployee(ctx context.Context, e *staff.Employee) error
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error)
	CreateShift(ctx context.Context, s *staff.Shift) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *expense.Expense) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, limit int32, leaseUntil time.Time) ([]NotificationJob, error)
	MarkSent(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, retryAt *time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
