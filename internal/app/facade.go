package app

import (
	"context"
	"errors"
	"io"

	"github.com/polkiloo/suitopia/internal/adapter/apod"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/server/http/handlers"
	"github.com/polkiloo/suitopia/internal/storage"
	"github.com/polkiloo/suitopia/internal/usecase"
)

// MediaSource provides the picture of the day.
type MediaSource interface {
	Get(ctx context.Context) (*apod.Media, error)
}

// StorefrontFacade exposes use cases to the HTTP layer.
type StorefrontFacade struct {
	orders  *usecase.OrderUseCase
	catalog *usecase.CatalogUseCase
	content *usecase.ContentUseCase
	uploads *usecase.UploadUseCase
	admin   *usecase.AdminUseCase
	media   MediaSource
	store   storage.DocumentStore
}

func NewStorefrontFacade(
	orders *usecase.OrderUseCase,
	catalog *usecase.CatalogUseCase,
	content *usecase.ContentUseCase,
	uploads *usecase.UploadUseCase,
	admin *usecase.AdminUseCase,
	media MediaSource,
	store storage.DocumentStore,
) *StorefrontFacade {
	return &StorefrontFacade{
		orders:  orders,
		catalog: catalog,
		content: content,
		uploads: uploads,
		admin:   admin,
		media:   media,
		store:   store,
	}
}

func (f *StorefrontFacade) CreateAdoption(ctx context.Context, userID string, character model.Character, application *model.ApplicationData) (*model.Order, error) {
	return f.orders.CreateAdoption(ctx, userID, character, application)
}

func (f *StorefrontFacade) CreateCommission(ctx context.Context, userID string, style model.CommissionStyle, application *model.ApplicationData) (*model.Order, error) {
	return f.orders.CreateCommission(ctx, userID, style, application)
}

func (f *StorefrontFacade) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, id, reason string) (*model.Order, error) {
	return f.orders.Cancel(ctx, id, reason)
}

func (f *StorefrontFacade) ReinstateOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Reinstate(ctx, id)
}

func (f *StorefrontFacade) ConfirmOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Confirm(ctx, id)
}

func (f *StorefrontFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *StorefrontFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.List(ctx, userID)
}

func (f *StorefrontFacade) SeriesCatalog() handlers.CatalogFacade[model.CharacterSeries] {
	return f.catalog.Series
}

func (f *StorefrontFacade) CharacterCatalog() handlers.CatalogFacade[model.Character] {
	return f.catalog.Characters
}

func (f *StorefrontFacade) CommissionCatalog() handlers.CatalogFacade[model.CommissionOption] {
	return f.catalog.CommissionOptions
}

func (f *StorefrontFacade) StyleCatalog() handlers.CatalogFacade[model.CommissionStyle] {
	return f.catalog.CommissionStyles
}

func (f *StorefrontFacade) SiteContent(ctx context.Context) (*model.SiteContent, error) {
	return f.content.SiteContent(ctx)
}

func (f *StorefrontFacade) SaveSiteContent(ctx context.Context, content model.SiteContent) (*model.SiteContent, error) {
	return f.content.SaveSiteContent(ctx, content)
}

func (f *StorefrontFacade) Contracts(ctx context.Context) (*model.Contracts, error) {
	return f.content.Contracts(ctx)
}

func (f *StorefrontFacade) SaveContracts(ctx context.Context, contracts model.Contracts) (*model.Contracts, error) {
	return f.content.SaveContracts(ctx, contracts)
}

func (f *StorefrontFacade) Theme(ctx context.Context) (*model.ThemeInfo, error) {
	return f.content.Theme(ctx)
}

func (f *StorefrontFacade) SaveUpload(ctx context.Context, name string, content io.Reader) (string, error) {
	return f.uploads.Save(ctx, name, content)
}

func (f *StorefrontFacade) PictureOfTheDay(ctx context.Context) (*apod.Media, error) {
	return f.media.Get(ctx)
}

func (f *StorefrontFacade) Enabled() bool {
	return f.admin.Enabled()
}

func (f *StorefrontFacade) Authorize(token string) error {
	return f.admin.Authorize(token)
}

func (f *StorefrontFacade) AdminLogin(password string) (string, error) {
	return f.admin.Login(password)
}

// HealthCheck pings stores that support it and otherwise reads the site
// content document.
func (f *StorefrontFacade) HealthCheck(ctx context.Context) error {
	if checker, ok := f.store.(storage.HealthChecker); ok {
		return checker.HealthCheck(ctx)
	}
	var probe model.SiteContent
	err := f.store.Read(ctx, storage.SiteContentDocument, &probe)
	if errors.Is(err, storage.ErrDocumentMissing) {
		return nil
	}
	return err
}

var _ handlers.StorefrontFacade = (*StorefrontFacade)(nil)
