//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/cookie"
	"hotel-backoffice/tests/common/dbtest"
	"hotel-backoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser signs in through the API and returns the session token. The body
// and the access_token cookie must carry the same token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken)

	session := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, session, "%s cookie not set", cookie.AccessTokenCookieName)
	require.Equal(t, body.AccessToken, session.Value)

	return body.AccessToken
}

// CreateAndLogin seeds a staff account with dbtest.DefaultPassword and signs in.
func CreateAndLogin(t *testing.T, db sqlc.DBTX, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutWithToken(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
