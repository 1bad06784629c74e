package collection

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/config"
	"github.com/polkiloo/suitopia/internal/domain/repository"
	"github.com/polkiloo/suitopia/internal/storage"
	"github.com/polkiloo/suitopia/internal/storage/file"
	"github.com/polkiloo/suitopia/internal/storage/postgres"
	"github.com/polkiloo/suitopia/internal/storage/sqlite"
)

// Module wires the configured document store and repository adapters.
var Module = fx.Options(
	fx.Provide(newDocumentStore),
	fx.Provide(
		NewRepositories,
		func(r *Repositories) repository.Factory { return r },
		func(r *Repositories) repository.OrderRepository { return r.Orders() },
		func(r *Repositories) repository.CharacterRepository { return r.Characters() },
		func(r *Repositories) repository.SeriesRepository { return r.Series() },
		func(r *Repositories) repository.CommissionOptionRepository { return r.CommissionOptions() },
		func(r *Repositories) repository.CommissionStyleRepository { return r.CommissionStyles() },
		func(r *Repositories) repository.ContentRepository { return r.Content() },
	),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newDocumentStore(p storeParams) (storage.DocumentStore, error) {
	p.Logger.Info("opening document store", slog.String("driver", p.Config.StorageDriver))
	switch p.Config.StorageDriver {
	case config.StorageFile, "":
		return file.New(p.Config.DataDir, p.Logger)
	case config.StoragePostgres:
		return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	case config.StorageSQLite:
		return sqlite.Open(p.Config.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", p.Config.StorageDriver)
	}
}

func registerLifecycle(lc fx.Lifecycle, store storage.DocumentStore) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
