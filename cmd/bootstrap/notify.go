package bootstrap

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/infra/mailer"
	"hotel-backoffice/internal/infra/notify"
	"hotel-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(notify.Sender)),
		),
		notify.NewDispatcher,
		notify.NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewMailer(cfg config.Config, logger *slog.Logger) (*mailer.Mailer, error) {
	return mailer.New(cfg.Mail, logger)
}

func startScheduler(lc fx.Lifecycle, s *notify.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Notify.Enabled {
		logger.Info("notification dispatcher disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			return s.Stop()
		},
	})
}
