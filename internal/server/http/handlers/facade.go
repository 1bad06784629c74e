package handlers

import (
	"context"
	"io"

	"github.com/polkiloo/suitopia/internal/adapter/apod"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/server/http/middleware"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateAdoption(ctx context.Context, userID string, character model.Character, application *model.ApplicationData) (*model.Order, error)
	CreateCommission(ctx context.Context, userID string, style model.CommissionStyle, application *model.ApplicationData) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	CancelOrder(ctx context.Context, id, reason string) (*model.Order, error)
	ReinstateOrder(ctx context.Context, id string) (*model.Order, error)
	ConfirmOrder(ctx context.Context, id string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	Order(ctx context.Context, id string) (*model.Order, error)
	Orders(ctx context.Context, userID string) ([]model.Order, error)
}

// CatalogFacade is CRUD over one catalog collection.
type CatalogFacade[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	FindByName(ctx context.Context, name string) (*T, error)
	Filter(ctx context.Context, keep func(*T) bool) ([]T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id string, item T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// CatalogsFacade exposes the four catalog collections.
type CatalogsFacade interface {
	SeriesCatalog() CatalogFacade[model.CharacterSeries]
	CharacterCatalog() CatalogFacade[model.Character]
	CommissionCatalog() CatalogFacade[model.CommissionOption]
	StyleCatalog() CatalogFacade[model.CommissionStyle]
}

// ContentFacade manages the site content and contracts singletons.
type ContentFacade interface {
	SiteContent(ctx context.Context) (*model.SiteContent, error)
	SaveSiteContent(ctx context.Context, content model.SiteContent) (*model.SiteContent, error)
	Contracts(ctx context.Context) (*model.Contracts, error)
	SaveContracts(ctx context.Context, contracts model.Contracts) (*model.Contracts, error)
	Theme(ctx context.Context) (*model.ThemeInfo, error)
}

// UploadFacade stores uploaded images.
type UploadFacade interface {
	SaveUpload(ctx context.Context, name string, content io.Reader) (string, error)
}

// MediaFacade serves the picture of the day.
type MediaFacade interface {
	PictureOfTheDay(ctx context.Context) (*apod.Media, error)
}

// AdminFacade authenticates the back-office operator.
type AdminFacade interface {
	middleware.AdminAuthorizer
	AdminLogin(password string) (string, error)
}

// HealthFacade reports readiness of the backing store.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	OrderFacade
	CatalogsFacade
	ContentFacade
	UploadFacade
	MediaFacade
	AdminFacade
	HealthFacade
}
