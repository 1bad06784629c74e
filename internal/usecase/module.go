package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/suitopia/internal/config"
	"github.com/polkiloo/suitopia/internal/domain/repository"
	"github.com/polkiloo/suitopia/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderNumberGenerator,
	NewOrderUseCase,
	NewCatalogUseCase,
	func(content repository.ContentRepository, cfg *config.Config) *ContentUseCase {
		return NewContentUseCase(content, cfg.Location)
	},
	func(cfg *config.Config) *UploadUseCase {
		return NewUploadUseCase(cfg.UploadDir)
	},
	func(hasher auth.PasswordHasher, strategy auth.Strategy, cfg *config.Config) *AdminUseCase {
		return NewAdminUseCase(hasher, strategy, cfg.AdminPasswordHash)
	},
)
