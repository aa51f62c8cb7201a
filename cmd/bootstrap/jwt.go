package bootstrap

import (
	"fmt"
	"time"

	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/jwt"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(commands.TokenIssuer)),
			fx.As(new(queries.TokenParser)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, duration, clk), nil
}
