package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/config"
	"github.com/polkiloo/suitopia/internal/metrics"
	"github.com/polkiloo/suitopia/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Facade  handlers.StorefrontFacade
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func newEngine(p engineParams) *gin.Engine {
	return Setup(p.Facade, Options{
		UploadDir:      p.Config.UploadDir,
		UploadMaxBytes: p.Config.UploadMaxBytes,
		RateLimitRPS:   p.Config.RateLimitRPS,
		RateLimitBurst: p.Config.RateLimitBurst,
		Metrics:        p.Metrics,
		MetricsHandler: p.Metrics.Handler(),
	}, p.Logger)
}
