package repository

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	logger  *slog.Logger
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(logger *slog.Logger, queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		logger:  logger,
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapDBErr(r.logger, "failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, r.db, userID); err != nil {
		return infra.WrapDBErr(r.logger, "failed to update user last login", err)
	}
	return nil
}
