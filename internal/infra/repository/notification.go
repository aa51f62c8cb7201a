package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	logger  *slog.Logger
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(logger *slog.Logger, queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		logger:  logger,
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.NotificationStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapDBErr(r.logger, "failed to create notification job", err)
	}
	return nil
}

// ClaimDue leases up to limit due jobs until leaseUntil. The lease is the only
// thing held once the claiming transaction commits.
func (r *NotificationRepository) ClaimDue(ctx context.Context, limit int32, leaseUntil time.Time) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		Limit:      limit,
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to claim notification jobs", err)
	}
	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, jobID uuid.UUID) error {
	return r.updateStatus(ctx, sqlc.UpdateNotificationJobStatusParams{
		ID:     jobID,
		Status: shared.NotificationStatusSent,
	})
}

// MarkFailed requeues the job at retryAt, or fails it for good when retryAt is nil.
func (r *NotificationRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, retryAt *time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    shared.NotificationStatusFailed,
		LastError: pgconv.StringToPgtype(lastError),
	}
	if retryAt != nil {
		params.Status = shared.NotificationStatusQueued
		params.RunAt = pgtype.Timestamptz{Time: *retryAt, Valid: true}
	}
	return r.updateStatus(ctx, params)
}

func (r *NotificationRepository) updateStatus(ctx context.Context, params sqlc.UpdateNotificationJobStatusParams) error {
	if err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params); err != nil {
		return infra.WrapDBErr(r.logger, "failed to update notification job status", err)
	}
	return nil
}
