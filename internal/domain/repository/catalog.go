package repository

import (
	"context"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// CatalogRepository is the CRUD contract shared by every catalog collection.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item T) error
	Replace(ctx context.Context, id string, item T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// SeriesRepository stores character series.
type SeriesRepository = CatalogRepository[model.CharacterSeries]

// CommissionOptionRepository stores commission options.
type CommissionOptionRepository = CatalogRepository[model.CommissionOption]

// CommissionStyleRepository stores commission styles.
type CommissionStyleRepository = CatalogRepository[model.CommissionStyle]

// CharacterRepository stores adoptable characters.
type CharacterRepository interface {
	CatalogRepository[model.Character]
	IncrementApplicants(ctx context.Context, id string) (bool, error)
}
