package readstore

import (
	"context"
	"log/slog"
	"strings"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error)
}

type UserReadStore struct {
	logger  *slog.Logger
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(logger *slog.Logger, queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		logger:  logger,
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", infra.WrapDBErr(r.logger, "failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) List(ctx context.Context, filter queries.UserFilter) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, sqlc.ListUsersParams{
		Role:  pgconv.StringPtrToPgtype(filter.Role),
		Limit: int32(filter.Limit),
	})
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to list users", err)
	}

	views := make([]*queries.AuthorizedUserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toAuthorizedUserView(row))
	}
	return views, nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
