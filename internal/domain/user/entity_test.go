//go:build unit

package user_test

import (
	"testing"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds an active user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		role, _ := user.NewRole("admin")
		expected := user.NewUser(email, "hashed_password", role, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("front.desk@hotel.example") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "operator", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }},
			{name: "viewer", mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("housekeeper") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("inactive user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.IsActive())
	})
}

func TestEmailIsNormalised(t *testing.T) {
	email, err := user.NewEmail("  Front.Desk@Hotel.Example ")
	require.NoError(t, err)
	assert.Equal(t, "front.desk@hotel.example", email.Value())
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role       user.Role
		operate    bool
		administer bool
	}{
		{role: user.RoleViewer},
		{role: user.RoleOperator, operate: true},
		{role: user.RoleAdmin, operate: true, administer: true},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.operate, tt.role.CanOperate())
			assert.Equal(t, tt.administer, tt.role.CanAdminister())
		})
	}
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials("Admin@Hotel.Example", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin@hotel.example", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())

	_, err = user.NewCredentials("admin@hotel.example", "short")
	assert.True(t, errs.Is(err, user.ErrPasswordTooWeak))
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.True(t, errs.Is(err, c.errIs), "got %v", err)
			}
		})
	}
}
