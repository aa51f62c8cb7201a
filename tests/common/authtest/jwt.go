//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.tokenAt(t, time.Now(), userID, role)
}

// CreateExpiredToken signs a token whose lifetime ended before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.tokenAt(t, time.Now().Add(-24*time.Hour), userID, role)
}

func (h *JWTHelper) tokenAt(t *testing.T, issuedAt time.Time, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration, clock.NewMockClock(issuedAt))
	token, _, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
