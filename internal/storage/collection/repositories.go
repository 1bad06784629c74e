package collection

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/domain/repository"
	"github.com/polkiloo/suitopia/internal/storage"
)

// Repositories exposes every domain repository over one document store.
type Repositories struct {
	orders            *Collection[model.Order]
	characters        *characterRepository
	series            *Collection[model.CharacterSeries]
	commissionOptions *Collection[model.CommissionOption]
	commissionStyles  *Collection[model.CommissionStyle]
	content           *contentRepository
}

// NewRepositories binds the collections to their documents.
func NewRepositories(store storage.DocumentStore) *Repositories {
	return &Repositories{
		orders: New(store, storage.OrdersDocument, "order",
			func(o *model.Order) *string { return &o.ID }),
		characters: &characterRepository{Collection: New(store, storage.CharactersDocument, "character",
			func(c *model.Character) *string { return &c.ID })},
		series: New(store, storage.CharacterSeriesDocument, "character series",
			func(s *model.CharacterSeries) *string { return &s.ID }),
		commissionOptions: New(store, storage.CommissionOptionsDocument, "commission option",
			func(o *model.CommissionOption) *string { return &o.ID }),
		commissionStyles: New(store, storage.CommissionStylesDocument, "commission style",
			func(s *model.CommissionStyle) *string { return &s.ID }),
		content: &contentRepository{store: store},
	}
}

func (r *Repositories) Orders() repository.OrderRepository { return r.orders }

func (r *Repositories) Characters() repository.CharacterRepository { return r.characters }

func (r *Repositories) Series() repository.SeriesRepository { return r.series }

func (r *Repositories) CommissionOptions() repository.CommissionOptionRepository {
	return r.commissionOptions
}

func (r *Repositories) CommissionStyles() repository.CommissionStyleRepository {
	return r.commissionStyles
}

func (r *Repositories) Content() repository.ContentRepository { return r.content }

type characterRepository struct {
	*Collection[model.Character]
}

// IncrementApplicants bumps the applicant counter. It reports false when
// the character does not exist.
func (r *characterRepository) IncrementApplicants(ctx context.Context, id string) (bool, error) {
	_, err := r.Update(ctx, id, func(c *model.Character) error {
		c.Applicants++
		return nil
	})
	if errors.Is(err, domainErrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type contentRepository struct {
	store storage.DocumentStore
}

func (r *contentRepository) SiteContent(ctx context.Context) (*model.SiteContent, error) {
	var content model.SiteContent
	if err := readSingleton(ctx, r.store, storage.SiteContentDocument, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) SaveSiteContent(ctx context.Context, content model.SiteContent) error {
	return r.store.Write(ctx, storage.SiteContentDocument, content)
}

func (r *contentRepository) Contracts(ctx context.Context) (*model.Contracts, error) {
	var contracts model.Contracts
	if err := readSingleton(ctx, r.store, storage.ContractsDocument, &contracts); err != nil {
		return nil, err
	}
	return &contracts, nil
}

func (r *contentRepository) SaveContracts(ctx context.Context, contracts model.Contracts) error {
	return r.store.Write(ctx, storage.ContractsDocument, contracts)
}

func readSingleton(ctx context.Context, store storage.DocumentStore, name string, dst any) error {
	err := store.Read(ctx, name, dst)
	if errors.Is(err, storage.ErrDocumentMissing) {
		return nil
	}
	return err
}

var (
	_ repository.Factory             = (*Repositories)(nil)
	_ repository.OrderRepository     = (*Collection[model.Order])(nil)
	_ repository.CharacterRepository = (*characterRepository)(nil)
	_ repository.ContentRepository   = (*contentRepository)(nil)
)
