//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/pkg/cookie"
	"hotel-backoffice/tests/common/authtest"
	"hotel-backoffice/tests/common/dbtest"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
	roomsURL  = "/api/rooms"
	usersURL  = "/api/users"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	adminID    uuid.UUID
	viewerID   uuid.UUID
	inactiveID uuid.UUID
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.seedUsers()
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.seedUsers()
}

func (s *authSuite) seedUsers() {
	t := s.T()
	s.adminID = dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	s.viewerID = dbtest.CreateTestUser(t, s.DB, "viewer@example.com", string(user.RoleViewer))
	dbtest.CreateTestUser(t, s.DB, "operator@example.com", string(user.RoleOperator))
	s.inactiveID = dbtest.CreateTestUser(t, s.DB, "inactive@example.com", string(user.RoleAdmin))
	dbtest.DeactivateUser(t, s.DB, s.inactiveID)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantMsg    string
	}{
		{name: "valid credentials", email: "admin@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
		{name: "wrong password", email: "admin@example.com", password: "wrongpassword", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusForbidden, wantMsg: "Account is inactive"},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, wantStatus: http.StatusBadRequest},
		{name: "empty password", email: "admin@example.com", password: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.wantStatus, tt.wantMsg)
				return
			}

			var resp response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
			assert.NotEmpty(t, resp.AccessToken)
			require.NotNil(t, resp.User)
			assert.Equal(t, tt.email, resp.User.Email)
			assert.Equal(t, string(user.RoleAdmin), resp.User.Role)

			c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
			require.NotNil(t, c)
			assert.Equal(t, resp.AccessToken, c.Value)
			assert.True(t, c.HttpOnly)

			var lastLogin *string
			err := s.DB.QueryRow(t.Context(), "SELECT last_login::text FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			assert.NotNil(t, lastLogin)
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("cookie from login", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "viewer@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "")

		var resp response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, s.viewerID, resp.ID)
		assert.Equal(t, string(user.RoleViewer), resp.Role)
	})

	s.Run("bearer token", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, s.adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var resp response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, "admin@example.com", resp.Email)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, s.adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token of a deactivated user", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, s.inactiveID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookie", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	})

	s.Run("with the cookie only", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "frontdesk@example.com", string(user.RoleOperator))

		authtest.LogoutWithToken(t, s.Router, token)
	})

	s.Run("without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestRoleGuards() {
	body := map[string]any{"name": "101", "category": "double", "price_per_night": "100.00"}

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{name: "viewer may not create rooms", role: user.RoleViewer, wantStatus: http.StatusForbidden},
		{name: "operator may not create rooms", role: user.RoleOperator, wantStatus: http.StatusForbidden},
		{name: "admin creates rooms", role: user.RoleAdmin, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			id := dbtest.CreateTestUser(t, s.DB, string(tt.role)+"-guard@example.com", string(tt.role))
			token := s.jwt.GenerateToken(t, id, tt.role)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, body, token)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestListUsers() {
	s.Run("admin sees every account ordered by email", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, s.adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL, nil, token)

		var got []response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		emails := make([]string, 0, len(got))
		for _, u := range got {
			emails = append(emails, u.Email)
		}
		assert.Equal(t, []string{"admin@example.com", "inactive@example.com", "operator@example.com", "viewer@example.com"}, emails)
	})

	s.Run("role filter and limit", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, s.adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL+"?role=admin&limit=1", nil, token)

		var got []response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "admin@example.com", got[0].Email)
		assert.True(t, got[0].IsActive)
	})

	s.Run("unknown role is rejected", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, s.adminID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL+"?role=guest", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("viewer is forbidden", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, s.viewerID, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL, nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
