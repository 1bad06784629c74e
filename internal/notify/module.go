package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/adapter/mailer"
	"github.com/polkiloo/suitopia/internal/config"
	"github.com/polkiloo/suitopia/internal/domain/repository"
	"github.com/polkiloo/suitopia/internal/usecase"
)

// Module wires the notification dispatcher as the order event publisher.
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config) (*Renderer, error) { return NewRenderer(cfg.BaseURL) },
		newDispatcher,
		func(d *Dispatcher) usecase.EventPublisher { return d },
	),
	fx.Invoke(registerLifecycle),
)

type dispatcherParams struct {
	fx.In

	Config   *config.Config
	Sender   mailer.Sender
	Content  repository.ContentRepository
	Renderer *Renderer
	Observer Observer `optional:"true"`
	Logger   *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(
		p.Sender,
		p.Content,
		p.Renderer,
		p.Config.MailFrom,
		p.Config.NotifyWorkers,
		p.Config.NotifyQueueSize,
		p.Observer,
		p.Logger,
	)
}

func registerLifecycle(lc fx.Lifecycle, d *Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Stop(ctx)
			return nil
		},
	})
}
