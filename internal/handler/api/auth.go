package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/cookie"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary User login
// @Description Login with email and password. The token is returned and also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	user, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresAt)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        user,
	})
}

// @Summary User logout
// @Description Clears the session cookie. Bearer tokens stay valid until they expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "unauthenticated", "User not authenticated", nil)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	user, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
