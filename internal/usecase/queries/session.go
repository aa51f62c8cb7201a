package queries

import (
	"context"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errs.New("unauthenticated")

type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenParser interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// SessionQueries resolves an access token to the acting user.
type SessionQueries interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

type sessionQueriesImpl struct {
	tokens TokenParser
	users  UserReadStore
}

func NewSessionQueries(tokens TokenParser, users UserReadStore) SessionQueries {
	return &sessionQueriesImpl{tokens: tokens, users: users}
}

// Authenticate checks the token signature and expiry, then the account itself,
// so a deactivated user loses access before the token expires.
func (q *sessionQueriesImpl) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := q.tokens.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}

	view, err := q.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}
	if !view.IsActive {
		return nil, errs.Mark(ErrUserInactive, ErrUnauthenticated)
	}

	// The stored role wins over the one in the token.
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}
	return &Principal{UserID: view.ID, Role: role}, nil
}
