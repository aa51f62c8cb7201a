package commands

import (
	"context"

	"hotel-backoffice/internal/domain/user"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/password"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(credentials.Email(), hash, role, c.clock.Now())

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, u)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
