package queries

import (
	"context"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	// GetCurrentUser loads the caller's account; a deactivated account is ErrUserInactive.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	// ListUsers returns staff accounts ordered by email, inactive ones included.
	ListUsers(ctx context.Context, filter UserFilter) ([]*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	List(ctx context.Context, filter UserFilter) ([]*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrUserNotFound)
	case err != nil:
		return nil, err
	case !view.IsActive:
		return nil, ErrUserInactive
	}
	return view, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, filter UserFilter) ([]*AuthorizedUserView, error) {
	filter.Limit = clampLimit(filter.Limit)
	return q.users.List(ctx, filter)
}
