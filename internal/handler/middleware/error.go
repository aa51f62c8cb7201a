package middleware

import (
	"log/slog"
	"net/http"

	"hotel-backoffice/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error a handler attached when the
// handler itself wrote nothing. Private errors are logged and become a 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		logger.Error("unhandled request error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"errors", c.Errors.Errors(),
		)
		resp := httperr.Internal()
		c.JSON(resp.Status, resp)
	}
}

// NotFound answers unknown routes with the same error body as the API.
func NotFound(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusNotFound}
	resp.Error.Code = "route_not_found"
	resp.Error.Message = "Route not found"
	c.JSON(resp.Status, resp)
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				resp := httperr.Internal()
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
