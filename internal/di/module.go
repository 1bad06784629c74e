package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/adapter/apod"
	"github.com/polkiloo/suitopia/internal/adapter/mailer"
	"github.com/polkiloo/suitopia/internal/app"
	"github.com/polkiloo/suitopia/internal/config"
	"github.com/polkiloo/suitopia/internal/logger"
	"github.com/polkiloo/suitopia/internal/metrics"
	"github.com/polkiloo/suitopia/internal/notify"
	"github.com/polkiloo/suitopia/internal/pkg/auth"
	"github.com/polkiloo/suitopia/internal/server/http/router"
	"github.com/polkiloo/suitopia/internal/storage/collection"
	"github.com/polkiloo/suitopia/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		collection.Module,
		metrics.Module,
		mailer.Module,
		notify.Module,
		apod.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
