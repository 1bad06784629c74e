package auth

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type hasherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	if p.Config.AdminPasswordHash != "" {
		if _, err := ValidateHash(p.Config.AdminPasswordHash); err != nil {
			p.Logger.Error("ADMIN_PASSWORD_HASH is not a bcrypt hash, admin login will fail", slog.String("error", err.Error()))
		}
	}
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
}
