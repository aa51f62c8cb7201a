//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(discardLogger()))
	r.Use(middleware.ErrorHandler(discardLogger()))
	r.NoRoute(middleware.NotFound)
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("pool exhausted"))
	})
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Code = "booking_conflict"
		resp.Error.Message = "Room is already booked for these dates"
		_ = c.Error(errors.New("overlap")).SetType(gin.ErrorTypePublic).SetMeta(resp)
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("private error hides its cause", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "pool exhausted")
	})

	t.Run("public error is rendered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")
	})

	t.Run("written response is untouched", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/nope", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Route not found")
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	newRouter := func(cfg config.CORSConfig) *gin.Engine {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg, discardLogger()))
		r.GET("/api/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("exposes Location and allows credentials", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := nethttptest.NewRecorder()
		newRouter(base).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Location")
	})

	t.Run("preflight allows Authorization", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := nethttptest.NewRecorder()
		newRouter(base).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := nethttptest.NewRecorder()
		newRouter(base).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		req := nethttptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		w := nethttptest.NewRecorder()
		newRouter(cfg).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
