package bootstrap

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects at construction, pings again on start and closes on stop.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return err
			}
			stat := pool.Stat()
			logger.Info("database ready", "host", cfg.DB.Host, "max_conns", stat.MaxConns(), "total_conns", stat.TotalConns())
			return nil
		},
		OnStop: func(_ context.Context) error {
			closePool()
			logger.Info("database pool closed")
			return nil
		},
	})

	return pool, nil
}
