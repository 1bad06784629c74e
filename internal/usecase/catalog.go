package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/domain/repository"
)

// Catalog id prefixes.
const (
	SeriesIDPrefix           = "series_"
	CharacterIDPrefix        = "char_"
	CommissionOptionIDPrefix = "comm_"
	CommissionStyleIDPrefix  = "style_"
)

// CatalogCollection is CRUD over one catalog collection.
type CatalogCollection[T any] struct {
	repo   repository.CatalogRepository[T]
	prefix string
	entity string
	id     func(*T) *string
	name   func(*T) string
	now    func() time.Time
}

func newCatalogCollection[T any](
	repo repository.CatalogRepository[T],
	prefix, entity string,
	id func(*T) *string,
	name func(*T) string,
) *CatalogCollection[T] {
	return &CatalogCollection[T]{repo: repo, prefix: prefix, entity: entity, id: id, name: name, now: time.Now}
}

// List returns every record.
func (c *CatalogCollection[T]) List(ctx context.Context) ([]T, error) {
	return c.repo.List(ctx)
}

// Get returns the record with the id.
func (c *CatalogCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	return c.repo.GetByID(ctx, id)
}

// FindByName returns the first record whose name matches exactly.
func (c *CatalogCollection[T]) FindByName(ctx context.Context, name string) (*T, error) {
	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.name(&items[i]) == name {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s named %q", domainErrors.ErrNotFound, c.entity, name)
}

// Filter returns records accepted by keep.
func (c *CatalogCollection[T]) Filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// Create assigns a fresh id and stores the record.
func (c *CatalogCollection[T]) Create(ctx context.Context, item T) (*T, error) {
	if err := c.validate(&item); err != nil {
		return nil, err
	}
	*c.id(&item) = fmt.Sprintf("%s%d", c.prefix, c.now().UnixMilli())
	if err := c.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the stored record, keeping its id.
func (c *CatalogCollection[T]) Update(ctx context.Context, id string, item T) (*T, error) {
	if err := c.validate(&item); err != nil {
		return nil, err
	}
	return c.repo.Replace(ctx, id, item)
}

// Delete removes the record. Dependent records are left in place.
func (c *CatalogCollection[T]) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}

func (c *CatalogCollection[T]) validate(item *T) error {
	if strings.TrimSpace(c.name(item)) == "" {
		return fmt.Errorf("%w: %s name is required", domainErrors.ErrValidation, c.entity)
	}
	return nil
}

// CatalogUseCase groups the four catalog collections.
type CatalogUseCase struct {
	Series            *CatalogCollection[model.CharacterSeries]
	Characters        *CatalogCollection[model.Character]
	CommissionOptions *CatalogCollection[model.CommissionOption]
	CommissionStyles  *CatalogCollection[model.CommissionStyle]
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(repos repository.Factory) *CatalogUseCase {
	return &CatalogUseCase{
		Series: newCatalogCollection[model.CharacterSeries](repos.Series(), SeriesIDPrefix, "character series",
			func(s *model.CharacterSeries) *string { return &s.ID },
			func(s *model.CharacterSeries) string { return s.Name }),
		Characters: newCatalogCollection[model.Character](repos.Characters(), CharacterIDPrefix, "character",
			func(c *model.Character) *string { return &c.ID },
			func(c *model.Character) string { return c.Name }),
		CommissionOptions: newCatalogCollection[model.CommissionOption](repos.CommissionOptions(), CommissionOptionIDPrefix, "commission option",
			func(o *model.CommissionOption) *string { return &o.ID },
			func(o *model.CommissionOption) string { return o.Name }),
		CommissionStyles: newCatalogCollection[model.CommissionStyle](repos.CommissionStyles(), CommissionStyleIDPrefix, "commission style",
			func(s *model.CommissionStyle) *string { return &s.ID },
			func(s *model.CommissionStyle) string { return s.Name }),
	}
}

// CharactersInSeries lists characters belonging to the series.
func (u *CatalogUseCase) CharactersInSeries(ctx context.Context, seriesID string) ([]model.Character, error) {
	return u.Characters.Filter(ctx, func(c *model.Character) bool { return c.SeriesID == seriesID })
}

// StylesForOption lists styles belonging to the commission option.
func (u *CatalogUseCase) StylesForOption(ctx context.Context, optionID string) ([]model.CommissionStyle, error) {
	return u.CommissionStyles.Filter(ctx, func(s *model.CommissionStyle) bool { return s.CommissionOptionID == optionID })
}
