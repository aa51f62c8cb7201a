package notify

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs the dispatcher on a fixed interval in the background.
type Scheduler struct {
	inner      gocron.Scheduler
	dispatcher *Dispatcher
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(dispatcher *Dispatcher, cfg config.Config, logger *slog.Logger) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "init scheduler")
	}
	return &Scheduler{
		inner:      inner,
		dispatcher: dispatcher,
		interval:   cfg.Notify.Interval,
		logger:     logger,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.inner.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.tick),
		gocron.WithName("notification-dispatcher"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errs.Wrap(err, "schedule dispatcher")
	}
	s.inner.Start()
	s.logger.Info("notification dispatcher started", "interval", s.interval)
	return nil
}

func (s *Scheduler) Stop() error {
	return s.inner.Shutdown()
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	res, err := s.dispatcher.RunOnce(ctx)
	if err != nil {
		s.logger.Error("notification batch failed",
			"sent", res.Sent, "retried", res.Retried, "failed", res.Failed, "error", err.Error())
		return
	}
	if res.Sent+res.Retried+res.Failed > 0 {
		s.logger.Info("notification batch done", "sent", res.Sent, "retried", res.Retried, "failed", res.Failed)
	}
}
