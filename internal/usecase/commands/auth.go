package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/user"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/password"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, time.Time, error)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	logger    *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		logger:    logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, expiresAt, err := a.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	// A failed last-login update does not fail the login.
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		a.logger.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		Role:        role,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		// Same error and cost as a password mismatch so emails cannot be enumerated.
		password.BurnComparison(credentials.Password().Value())
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
