package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/handler/validation"
	"hotel-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health    *api.HealthHandler
	Auth      *api.AuthHandler
	Users     *api.UserHandler
	Rooms     *api.RoomHandler
	Bookings  *api.BookingHandler
	Billing   *api.BillingHandler
	Directory *api.DirectoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	validation.Register()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewRequestLogger(logger, cfg.Log).Middleware())
	engine.Use(middleware.ErrorHandler(logger))
	engine.NoRoute(middleware.NotFound)
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := []gin.HandlerFunc{authMiddleware.RequireOperator()}
	admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Every role may read; writes need operator or admin.
		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())

		addRoutes(protected.Group("/users"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Users.List, Mw: admin},
			{Method: http.MethodPost, Path: "", Handler: h.Users.Create, Mw: admin},
		})

		addRoutes(protected.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.List},
			{Method: http.MethodPost, Path: "", Handler: h.Rooms.Create, Mw: admin},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rooms.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Rooms.Availability},
			{Method: http.MethodPut, Path: "/:id/price", Handler: h.Rooms.UpdatePrice, Mw: admin},
			{Method: http.MethodPut, Path: "/:id/cleaning", Handler: h.Rooms.UpdateCleaningStatus, Mw: operator},
		})

		addRoutes(protected.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create, Mw: operator},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Update, Mw: operator},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete, Mw: operator},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Bookings.ChangeStatus, Mw: operator},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Bookings.Quote},
			{Method: http.MethodGet, Path: "/:id/consumptions", Handler: h.Billing.ListConsumptions},
			{Method: http.MethodPost, Path: "/:id/consumptions", Handler: h.Billing.AddConsumption, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/invoice", Handler: h.Billing.IssueInvoice, Mw: operator},
		})

		addRoutes(protected.Group("/invoices"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Billing.ListInvoices},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Billing.GetInvoice},
		})

		addRoutes(protected.Group("/clients"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Directory.ListClients},
			{Method: http.MethodPost, Path: "", Handler: h.Directory.CreateClient, Mw: operator},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Directory.GetClient},
		})

		addRoutes(protected.Group("/employees"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Directory.ListEmployees},
			{Method: http.MethodPost, Path: "", Handler: h.Directory.CreateEmployee, Mw: admin},
		})

		addRoutes(protected.Group("/shifts"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Directory.ListShifts},
			{Method: http.MethodPost, Path: "", Handler: h.Directory.CreateShift, Mw: admin},
		})

		addRoutes(protected.Group("/expenses"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Directory.ExpenseReport, Mw: admin},
			{Method: http.MethodPost, Path: "", Handler: h.Directory.CreateExpense, Mw: admin},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
