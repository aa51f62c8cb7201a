package bootstrap

import (
	"log/slog"

	"hotel-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary never logs secrets.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"mode", gin.Mode(),
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"tax_rate", cfg.Billing.TaxRate,
		"notify_enabled", cfg.Notify.Enabled,
		"cors_origins", cfg.CORS.AllowOrigins,
	)
}
