package components

import (
	"hotel-backoffice/internal/infra/readstore"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/infra/uow"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Consumption
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ConsumptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewConsumptionReadStore,
			fx.As(new(queries.ConsumptionReadStore)),
		),
		// Invoice
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InvoiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		// Client
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClientReadQueries)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		// Staff
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StaffReadQueries)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
		// Expense
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExpenseReadQueries)),
		),
		fx.Annotate(
			readstore.NewExpenseReadStore,
			fx.As(new(queries.ExpenseReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
