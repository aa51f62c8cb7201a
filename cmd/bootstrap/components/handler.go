package components

import (
	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(api.Pinger)),
		),
		api.NewHealthHandler,
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewBillingHandler,
		api.NewDirectoryHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Health    *api.HealthHandler
	Auth      *api.AuthHandler
	Users     *api.UserHandler
	Rooms     *api.RoomHandler
	Bookings  *api.BookingHandler
	Billing   *api.BillingHandler
	Directory *api.DirectoryHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Health:    p.Health,
		Auth:      p.Auth,
		Users:     p.Users,
		Rooms:     p.Rooms,
		Bookings:  p.Bookings,
		Billing:   p.Billing,
		Directory: p.Directory,
	}
}
