package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/cookie"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	sessions queries.SessionQueries
	logger   *slog.Logger
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(sessions queries.SessionQueries, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth accepts the session cookie or a bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "unauthenticated", "Access token required", nil)
			return
		}

		principal, err := m.sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "unauthenticated", "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, principal.UserID)
		c.Set(ctxUserRoleKey, principal.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": principal.UserID.String(),
			"role":    principal.Role.String(),
		})
		c.Next()
	}
}

// RequireOperator admits front-desk staff and admins.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return requireRole(user.Role.CanOperate)
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return requireRole(user.Role.CanAdminister)
}

func requireRole(allowed func(user.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// RequireAuth must run first.
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "internal_error", "Internal server error", nil)
			return
		}
		if !allowed(role) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "forbidden", "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
