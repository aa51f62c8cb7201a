package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-ID"
	maxStackLines   = 12
)

type RequestLogger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewRequestLogger(logger *slog.Logger, cfg config.LogConfig) *RequestLogger {
	return &RequestLogger{
		logger:   logger,
		timezone: time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
	}
}

func (l *RequestLogger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = l.generateRequestID()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}

		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", logAttrs...)

		c.Next()

		// Auth runs inside c.Next, so the user is only known afterwards.
		if userID, role := extractUserContext(c); userID != "" {
			logAttrs = append(logAttrs, slog.String("user_id", userID), slog.String("role", role))
		}

		statusCode := c.Writer.Status()
		logAttrs = append(logAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if responseSize := c.Writer.Size(); responseSize > 0 {
			logAttrs = append(logAttrs, slog.Int("response_size", responseSize))
		}
		if len(c.Errors) > 0 {
			logAttrs = append(logAttrs, slog.String("errors", c.Errors.String()))
			if statusCode >= 500 {
				logAttrs = append(logAttrs, slog.Any("stack", errs.StackLines(c.Errors.Last().Err, maxStackLines)))
			}
		}

		logLevel := slog.LevelInfo
		if statusCode >= 500 {
			logLevel = slog.LevelError
		} else if statusCode >= 400 {
			logLevel = slog.LevelWarn
		}

		l.logger.LogAttrs(c.Request.Context(), logLevel, "Request completed", logAttrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func (l *RequestLogger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}

	return timestamp + "-" + hex.EncodeToString(randomBytes)
}

func extractUserContext(c *gin.Context) (userID, role string) {
	claims, exists := c.Get("jwt_claims")
	if !exists {
		return "", ""
	}
	claimsMap, ok := claims.(map[string]any)
	if !ok {
		return "", ""
	}
	userID, _ = claimsMap["user_id"].(string)
	role, _ = claimsMap["role"].(string)
	return userID, role
}
