//go:build unit

package password_test

import (
	"strings"
	"testing"

	"hotel-backoffice/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	tests := []struct {
		name   string
		hashed string
		plain  string
		want   error
	}{
		{name: "match", hashed: hash, plain: "password123"},
		{name: "mismatch", hashed: hash, plain: "password124", want: password.ErrComparisonFailed},
		{name: "empty hash", hashed: "", plain: "password123", want: password.ErrInvalidPassword},
		{name: "empty password", hashed: hash, plain: "", want: password.ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.ComparePassword(tt.hashed, tt.plain)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHashPassword_RejectsUnusableInput(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = password.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = password.HashPassword(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestBurnComparison(t *testing.T) {
	assert.NotPanics(t, func() { password.BurnComparison("anything") })
}
