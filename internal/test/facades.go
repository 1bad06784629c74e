package test

import (
	"context"
	"io"
	"time"

	"github.com/polkiloo/suitopia/internal/adapter/apod"
	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
	pkgAuth "github.com/polkiloo/suitopia/internal/pkg/auth"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateAdoptionFn   func(context.Context, string, model.Character, *model.ApplicationData) (*model.Order, error)
	CreateCommissionFn func(context.Context, string, model.CommissionStyle, *model.ApplicationData) (*model.Order, error)
	UpdateFn           func(context.Context, string, model.OrderPatch) (*model.Order, error)
	CancelFn           func(context.Context, string, string) (*model.Order, error)
	ReinstateFn        func(context.Context, string) (*model.Order, error)
	ConfirmFn          func(context.Context, string) (*model.Order, error)
	DeleteFn           func(context.Context, string) error
	OrderFn            func(context.Context, string) (*model.Order, error)
	OrdersFn           func(context.Context, string) ([]model.Order, error)
}

// CreateAdoption returns an applying adoption order unless overridden.
func (s OrderFacadeStub) CreateAdoption(ctx context.Context, userID string, character model.Character, application *model.ApplicationData) (*model.Order, error) {
	if s.CreateAdoptionFn != nil {
		return s.CreateAdoptionFn(ctx, userID, character, application)
	}
	return &model.Order{ID: "order_1", UserID: userID, ProductName: character.Name, OrderType: model.OrderTypeAdoption, Status: model.OrderStatusApplying}, nil
}

// CreateCommission returns an applying commission order unless overridden.
func (s OrderFacadeStub) CreateCommission(ctx context.Context, userID string, style model.CommissionStyle, application *model.ApplicationData) (*model.Order, error) {
	if s.CreateCommissionFn != nil {
		return s.CreateCommissionFn(ctx, userID, style, application)
	}
	return &model.Order{ID: "order_2", UserID: userID, ProductName: style.Name, OrderType: model.OrderTypeCommission, Status: model.OrderStatusApplying}, nil
}

// UpdateOrder applies the patch to a blank order unless overridden.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	order := &model.Order{ID: id, Status: model.OrderStatusApplying}
	patch.Apply(order)
	return order, nil
}

// CancelOrder returns a cancelling order unless overridden.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, id, reason string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id, reason)
	}
	return &model.Order{ID: id, Status: model.OrderStatusCancelling, CancellationReason: reason}, nil
}

// ReinstateOrder returns an applying order unless overridden.
func (s OrderFacadeStub) ReinstateOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.ReinstateFn != nil {
		return s.ReinstateFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusApplying}, nil
}

// ConfirmOrder returns a confirmed order unless overridden.
func (s OrderFacadeStub) ConfirmOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusConfirmed}, nil
}

// DeleteOrder succeeds unless overridden.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Order returns a stored order unless overridden.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusApplying}, nil
}

// Orders returns predefined orders for the given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "order_1", UserID: userID, OrderDate: time.Unix(0, 0).UTC()}}, nil
}

// CatalogStub is an in-memory catalog collection keyed by ID.
type CatalogStub[T any] struct {
	Items []T
	ID    func(*T) *string
	Name  func(*T) string
	Err   error
}

// List returns the stored items.
func (s *CatalogStub[T]) List(context.Context) ([]T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]T(nil), s.Items...), nil
}

// Get finds an item by ID.
func (s *CatalogStub[T]) Get(_ context.Context, id string) (*T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if i := s.index(id); i >= 0 {
		item := s.Items[i]
		return &item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// FindByName finds an item by exact name.
func (s *CatalogStub[T]) FindByName(_ context.Context, name string) (*T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Name(&s.Items[i]) == name {
			item := s.Items[i]
			return &item, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Filter returns the items accepted by keep.
func (s *CatalogStub[T]) Filter(_ context.Context, keep func(*T) bool) ([]T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []T
	for i := range s.Items {
		if keep(&s.Items[i]) {
			out = append(out, s.Items[i])
		}
	}
	return out, nil
}

// Create appends item with a generated ID.
func (s *CatalogStub[T]) Create(_ context.Context, item T) (*T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	*s.ID(&item) = "new"
	s.Items = append(s.Items, item)
	return &item, nil
}

// Update replaces the item with ID.
func (s *CatalogStub[T]) Update(_ context.Context, id string, item T) (*T, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	i := s.index(id)
	if i < 0 {
		return nil, domainErrors.ErrNotFound
	}
	*s.ID(&item) = id
	s.Items[i] = item
	return &item, nil
}

// Delete removes the item with ID.
func (s *CatalogStub[T]) Delete(_ context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	return nil
}

func (s *CatalogStub[T]) index(id string) int {
	for i := range s.Items {
		if *s.ID(&s.Items[i]) == id {
			return i
		}
	}
	return -1
}

// NewCharacterCatalog builds a character catalog stub.
func NewCharacterCatalog(items ...model.Character) *CatalogStub[model.Character] {
	return &CatalogStub[model.Character]{
		Items: items,
		ID:    func(c *model.Character) *string { return &c.ID },
		Name:  func(c *model.Character) string { return c.Name },
	}
}

// NewSeriesCatalog builds a character series catalog stub.
func NewSeriesCatalog(items ...model.CharacterSeries) *CatalogStub[model.CharacterSeries] {
	return &CatalogStub[model.CharacterSeries]{
		Items: items,
		ID:    func(c *model.CharacterSeries) *string { return &c.ID },
		Name:  func(c *model.CharacterSeries) string { return c.Name },
	}
}

// NewCommissionCatalog builds a commission option catalog stub.
func NewCommissionCatalog(items ...model.CommissionOption) *CatalogStub[model.CommissionOption] {
	return &CatalogStub[model.CommissionOption]{
		Items: items,
		ID:    func(c *model.CommissionOption) *string { return &c.ID },
		Name:  func(c *model.CommissionOption) string { return c.Name },
	}
}

// NewStyleCatalog builds a commission style catalog stub.
func NewStyleCatalog(items ...model.CommissionStyle) *CatalogStub[model.CommissionStyle] {
	return &CatalogStub[model.CommissionStyle]{
		Items: items,
		ID:    func(c *model.CommissionStyle) *string { return &c.ID },
		Name:  func(c *model.CommissionStyle) string { return c.Name },
	}
}

// ContentFacadeStub simulates content operations.
type ContentFacadeStub struct {
	Content     model.SiteContent
	Agreements  model.Contracts
	ThemeVal    model.ThemeInfo
	Err         error
	SaveContent func(context.Context, model.SiteContent) (*model.SiteContent, error)
}

// SiteContent returns the configured content.
func (s *ContentFacadeStub) SiteContent(context.Context) (*model.SiteContent, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	content := s.Content
	return &content, nil
}

// SaveSiteContent stores content.
func (s *ContentFacadeStub) SaveSiteContent(ctx context.Context, content model.SiteContent) (*model.SiteContent, error) {
	if s.SaveContent != nil {
		return s.SaveContent(ctx, content)
	}
	s.Content = content
	return &content, nil
}

// Contracts returns the configured contracts.
func (s *ContentFacadeStub) Contracts(context.Context) (*model.Contracts, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	contracts := s.Agreements
	return &contracts, nil
}

// SaveContracts stores contracts.
func (s *ContentFacadeStub) SaveContracts(_ context.Context, contracts model.Contracts) (*model.Contracts, error) {
	s.Agreements = contracts
	return &contracts, nil
}

// Theme returns the configured theme.
func (s *ContentFacadeStub) Theme(context.Context) (*model.ThemeInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	theme := s.ThemeVal
	return &theme, nil
}

// UploadFacadeStub records uploads.
type UploadFacadeStub struct {
	Names    []string
	Contents []string
	Err      error
}

// SaveUpload records the upload and returns a public URL.
func (s *UploadFacadeStub) SaveUpload(_ context.Context, name string, content io.Reader) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.Names = append(s.Names, name)
	s.Contents = append(s.Contents, string(data))
	return "/uploads/" + name, nil
}

// MediaFacadeStub returns a fixed picture.
type MediaFacadeStub struct {
	Media *apod.Media
	Err   error
}

// PictureOfTheDay returns the configured media.
func (s MediaFacadeStub) PictureOfTheDay(context.Context) (*apod.Media, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Media != nil {
		return s.Media, nil
	}
	return &apod.Media{MediaType: "image", URL: "data:image/png;base64,AA==", Title: "stub", Date: "2024-03-05"}, nil
}

// AdminAuthorizerStub accepts ValidToken when enabled.
type AdminAuthorizerStub struct {
	EnabledVal bool
	ValidToken string
	Password   string
}

// Enabled reports whether admin checks are active.
func (s *AdminAuthorizerStub) Enabled() bool {
	return s.EnabledVal
}

// Authorize accepts only ValidToken.
func (s *AdminAuthorizerStub) Authorize(token string) error {
	if token != s.ValidToken {
		return domainErrors.ErrUnauthorized
	}
	return nil
}

// AdminLogin returns ValidToken for Password.
func (s *AdminAuthorizerStub) AdminLogin(password string) (string, error) {
	if !s.EnabledVal {
		return "", pkgAuth.ErrDisabled
	}
	if password != s.Password {
		return "", domainErrors.ErrUnauthorized
	}
	return s.ValidToken, nil
}

// HealthFacadeStub returns Err from HealthCheck.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}
