package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"
)

const (
	maxBackoff   = time.Hour
	defaultLease = 5 * time.Minute
)

// errUndeliverable marks jobs that no retry can fix.
var errUndeliverable = errs.New("undeliverable notification")

type Sender interface {
	SendInvoiceIssued(ctx context.Context, p shared.InvoiceIssuedPayload) error
}

// Dispatcher drains due notification jobs. Delivery is at-least-once: a job
// whose send succeeded but whose status update failed is sent again once its
// lease runs out.
type Dispatcher struct {
	uow    shared.UnitOfWork
	sender Sender
	cfg    config.NotifyConfig
	clock  clock.Clock
	logger *slog.Logger
}

func NewDispatcher(uow shared.UnitOfWork, sender Sender, cfg config.Config, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		uow:    uow,
		sender: sender,
		cfg:    cfg.Notify,
		clock:  clk,
		logger: logger,
	}
}

type Result struct {
	Sent    int
	Retried int
	Failed  int
}

// RunOnce leases one batch of due jobs and tries each of them. Sends run
// outside any transaction and every outcome is recorded on its own, so a
// failed status write only affects that job.
func (d *Dispatcher) RunOnce(ctx context.Context) (Result, error) {
	jobs, err := d.claim(ctx)
	if err != nil {
		return Result{}, err
	}

	var (
		res      Result
		firstErr error
	)
	for _, job := range jobs {
		if err := d.process(ctx, job, &res); err != nil {
			d.logger.Error("failed to record notification outcome",
				"job_id", job.ID, "kind", job.Kind, "error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return res, firstErr
}

func (d *Dispatcher) claim(ctx context.Context) ([]shared.NotificationJob, error) {
	lease := d.cfg.Lease
	if lease <= 0 {
		lease = defaultLease
	}
	leaseUntil := d.clock.Now().Add(lease)

	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, d.cfg.BatchSize, leaseUntil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (d *Dispatcher) process(ctx context.Context, job shared.NotificationJob, res *Result) error {
	sendErr := d.deliver(ctx, job)
	if sendErr == nil {
		if err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().MarkSent(ctx, job.ID)
		}); err != nil {
			return err
		}
		res.Sent++
		return nil
	}

	retryAt := d.retryAt(job, sendErr)
	d.logger.Warn("notification delivery failed",
		"job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts+1, "will_retry", retryAt != nil, "error", sendErr.Error())
	if err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkFailed(ctx, job.ID, sendErr.Error(), retryAt)
	}); err != nil {
		return err
	}
	if retryAt != nil {
		res.Retried++
	} else {
		res.Failed++
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) error {
	switch job.Kind {
	case shared.NotificationKindInvoiceIssued:
		var p shared.InvoiceIssuedPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return errs.Mark(errs.Wrap(err, "decode invoice_issued payload"), errUndeliverable)
		}
		return d.sender.SendInvoiceIssued(ctx, p)
	default:
		return errs.Mark(errs.New("unknown kind "+job.Kind), errUndeliverable)
	}
}

// retryAt returns nil once the job has used up its attempts or cannot succeed.
// Otherwise the delay doubles per attempt, starting at the poll interval.
func (d *Dispatcher) retryAt(job shared.NotificationJob, sendErr error) *time.Time {
	if errs.Is(sendErr, errUndeliverable) {
		return nil
	}
	attempt := job.Attempts + 1
	if attempt >= d.cfg.MaxAttempts {
		return nil
	}
	delay := d.cfg.Interval << (attempt - 1)
	if delay <= 0 || delay > maxBackoff {
		delay = maxBackoff
	}
	at := d.clock.Now().Add(delay)
	return &at
}
