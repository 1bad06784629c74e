package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/suitopia/internal/adapter/apod"
	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/storage"
	"github.com/polkiloo/suitopia/internal/storage/collection"
	"github.com/polkiloo/suitopia/internal/storage/file"
	testhelpers "github.com/polkiloo/suitopia/internal/test"
	"github.com/polkiloo/suitopia/internal/usecase"
)

type mediaStub struct {
	media *apod.Media
	err   error
}

func (m mediaStub) Get(context.Context) (*apod.Media, error) { return m.media, m.err }

type storeStub struct {
	readErr error
}

func (s storeStub) Read(context.Context, string, any) error  { return s.readErr }
func (s storeStub) Write(context.Context, string, any) error { return nil }
func (s storeStub) Close() error                             { return nil }

type pingStore struct {
	storeStub
	pingErr error
}

func (s pingStore) HealthCheck(context.Context) error { return s.pingErr }

func newTestFacade(t *testing.T, store storage.DocumentStore, media MediaSource, adminHash string) *StorefrontFacade {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if store == nil {
		fs, err := file.New(filepath.Join(t.TempDir(), "data"), logger)
		require.NoError(t, err)
		store = fs
	}
	repos := collection.NewRepositories(store)

	return NewStorefrontFacade(
		usecase.NewOrderUseCase(repos.Orders(), repos.Characters(), nil, nil, usecase.NewOrderNumberGenerator(), logger),
		usecase.NewCatalogUseCase(repos),
		usecase.NewContentUseCase(repos.Content(), nil),
		usecase.NewUploadUseCase(filepath.Join(t.TempDir(), "uploads")),
		usecase.NewAdminUseCase(&testhelpers.HasherStub{}, &testhelpers.StrategyStub{}, adminHash),
		media,
		store,
	)
}

func TestFacadeOrderFlow(t *testing.T) {
	f := newTestFacade(t, nil, mediaStub{}, "")
	ctx := context.Background()

	character, err := f.CharacterCatalog().Create(ctx, model.Character{Name: "Nova", Price: "5000"})
	require.NoError(t, err)

	application := &model.ApplicationData{UserName: "Mika", Email: "mika@example.com", QQ: "10001"}
	order, err := f.CreateAdoption(ctx, "u1", *character, application)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusApplying, order.Status)

	stored, err := f.CharacterCatalog().Get(ctx, character.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Applicants)

	cancelled, err := f.CancelOrder(ctx, order.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelling, cancelled.Status)

	reinstated, err := f.ReinstateOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusApplying, reinstated.Status)

	status := model.OrderStatusPendingConfirmation
	updated, err := f.UpdateOrder(ctx, order.ID, model.OrderPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)

	confirmed, err := f.ConfirmOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, confirmed.Status)

	orders, err := f.Orders(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	require.NoError(t, f.DeleteOrder(ctx, order.ID))
	_, err = f.Order(ctx, order.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestFacadeContentAndUploads(t *testing.T) {
	f := newTestFacade(t, nil, mediaStub{}, "")
	ctx := context.Background()

	content, err := f.SiteContent(ctx)
	require.NoError(t, err)
	assert.NotNil(t, content)

	_, err = f.SaveContracts(ctx, model.Contracts{AdoptionContract: "terms"})
	require.NoError(t, err)
	contracts, err := f.Contracts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "terms", contracts.AdoptionContract)

	url, err := f.SaveUpload(ctx, "ref sheet.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, usecase.UploadURLPrefix))
	assert.True(t, strings.HasSuffix(url, "ref_sheet.png"))
}

func TestFacadeMediaAndAdmin(t *testing.T) {
	media := &apod.Media{MediaType: "image", Title: "Nebula"}
	f := newTestFacade(t, nil, mediaStub{media: media}, "hash:secret")

	got, err := f.PictureOfTheDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nebula", got.Title)

	assert.True(t, f.Enabled())
	token, err := f.AdminLogin("secret")
	require.NoError(t, err)
	assert.NoError(t, f.Authorize(token))
	assert.ErrorIs(t, f.Authorize("garbage"), domainErrors.ErrUnauthorized)
}

func TestFacadeHealthCheck(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		store storage.DocumentStore
		want  error
	}{
		{name: "missing document is healthy", store: storeStub{readErr: storage.ErrDocumentMissing}},
		{name: "read failure", store: storeStub{readErr: boom}, want: boom},
		{name: "ping ok", store: pingStore{storeStub: storeStub{readErr: boom}}},
		{name: "ping failure", store: pingStore{pingErr: boom}, want: boom},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFacade(t, tc.store, mediaStub{}, "")
			err := f.HealthCheck(context.Background())
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
