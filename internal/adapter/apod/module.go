package apod

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/config"
)

// Module provides the picture of the day client and its daily refresh.
var Module = fx.Options(
	fx.Provide(newClient, newScheduler),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) *Client {
	if p.Config.NASAAPIKey == "" {
		p.Logger.Warn("NASA_API_KEY is not set, serving the fallback image")
	}
	return NewClient(p.Config.NASAAPIURL, p.Config.NASAAPIKey, p.Config.APODFallbackURL, p.Logger)
}

func newScheduler(client *Client, cfg *config.Config, logger *slog.Logger) (*Scheduler, error) {
	return NewScheduler(client, DailySchedule, cfg.Location, logger)
}

func registerLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
