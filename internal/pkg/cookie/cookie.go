package cookie

import (
	"net/http"
	"time"

	"hotel-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessToken stores the session token in an HttpOnly cookie for the web front end.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiresAt time.Time) {
	c.SetSameSite(sameSite(cfg.SameSite))
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(AccessTokenCookieName, token, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func sameSite(value string) http.SameSite {
	switch value {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
