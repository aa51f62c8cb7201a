package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"hotel-backoffice/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Always added on top of the configured lists.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type"}
	requiredExposeHeaders = []string{"Location"}
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	// A wildcard origin cannot be combined with credentials.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			logger.Warn("CORS wildcard origin configured; disabling credentials")
			corsCfg.AllowCredentials = false
		}
	}

	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}

func withRequired(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return strings.EqualFold(v, h) }) {
			out = append(out, h)
		}
	}
	return out
}
