package bootstrap

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"hotel-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger writes JSON in release mode and text otherwise. Timestamps are
// rendered in the configured zone and layout.
func NewLogger(cfg config.Config) *slog.Logger {
	loc := logLocation(cfg.Log)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().In(loc).Format(cfg.Log.TimeFormat))
			}
			return a
		},
	}

	var h slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logLocation(cfg config.LogConfig) *time.Location {
	if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}
