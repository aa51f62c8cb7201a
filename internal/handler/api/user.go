package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/ptr"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{userCommands: userCommands, userQueries: userQueries}
}

// @Summary Create staff login
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	id, err := h.userCommands.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List staff logins
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "viewer, operator or admin"
// @Param limit query int false "Max rows (default 100, max 500)"
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q reqdto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}

	views, err := h.userQueries.ListUsers(c.Request.Context(), queries.UserFilter{
		Role:  ptr.NonEmpty(q.Role),
		Limit: q.Limit,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromUserViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
