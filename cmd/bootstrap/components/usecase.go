package components

import (
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewBillingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewRoomCommands,
		commands.NewBookingCommands,
		commands.NewBillingCommands,
		commands.NewDirectoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSessionQueries,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewInvoiceQueries,
		queries.NewClientQueries,
		queries.NewStaffQueries,
		queries.NewExpenseQueries,
	),
)
