//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-backoffice/internal/domain/user"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/password"
	"hotel-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()
	req := reqdto.CreateUserRequest{Email: "desk@example.com", Password: "password123", Role: "operator"}

	t.Run("hashes the password and stores the role", func(t *testing.T) {
		m := newUowMocks(t)
		want := uuid.New()

		var stored *user.User
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (uuid.UUID, error) {
				stored = u
				return want, nil
			})

		id, err := commands.NewUserCommands(m.uow, m.clock).Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, want, id)
		require.NotNil(t, stored)
		assert.Equal(t, "desk@example.com", stored.Email().Value())
		assert.Equal(t, user.RoleOperator, stored.Role())
		assert.NotEqual(t, "password123", stored.PasswordHash())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
	})

	t.Run("email already registered", func(t *testing.T) {
		m := newUowMocks(t)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, repoErr(infra.KindDuplicateKey))

		_, err := commands.NewUserCommands(m.uow, m.clock).Create(ctx, req)
		assert.True(t, errs.Is(err, commands.ErrEmailTaken))
	})

	t.Run("unknown role", func(t *testing.T) {
		m := newUowMocks(t)
		bad := req
		bad.Role = "owner"

		_, err := commands.NewUserCommands(m.uow, m.clock).Create(ctx, bad)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("short password", func(t *testing.T) {
		m := newUowMocks(t)
		bad := req
		bad.Password = "short"

		_, err := commands.NewUserCommands(m.uow, m.clock).Create(ctx, bad)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
