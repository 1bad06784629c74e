package router

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/metrics"
	"github.com/polkiloo/suitopia/internal/server/http/handlers"
	"github.com/polkiloo/suitopia/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/suitopia/internal/test"
)

type storefrontStub struct {
	testhelpers.OrderFacadeStub
	*testhelpers.ContentFacadeStub
	*testhelpers.UploadFacadeStub
	testhelpers.MediaFacadeStub
	*testhelpers.AdminAuthorizerStub
	testhelpers.HealthFacadeStub

	series     *testhelpers.CatalogStub[model.CharacterSeries]
	characters *testhelpers.CatalogStub[model.Character]
	options    *testhelpers.CatalogStub[model.CommissionOption]
	styles     *testhelpers.CatalogStub[model.CommissionStyle]
}

func (s *storefrontStub) SeriesCatalog() handlers.CatalogFacade[model.CharacterSeries] {
	return s.series
}

func (s *storefrontStub) CharacterCatalog() handlers.CatalogFacade[model.Character] {
	return s.characters
}

func (s *storefrontStub) CommissionCatalog() handlers.CatalogFacade[model.CommissionOption] {
	return s.options
}

func (s *storefrontStub) StyleCatalog() handlers.CatalogFacade[model.CommissionStyle] {
	return s.styles
}

var _ handlers.StorefrontFacade = (*storefrontStub)(nil)

func newStorefrontStub(adminEnabled bool) *storefrontStub {
	return &storefrontStub{
		ContentFacadeStub:   &testhelpers.ContentFacadeStub{},
		UploadFacadeStub:    &testhelpers.UploadFacadeStub{},
		AdminAuthorizerStub: &testhelpers.AdminAuthorizerStub{EnabledVal: adminEnabled, ValidToken: "tok", Password: "pw"},
		series:              testhelpers.NewSeriesCatalog(model.CharacterSeries{ID: "series_1", Name: "Forest"}),
		characters: testhelpers.NewCharacterCatalog(
			model.Character{ID: "char_1", SeriesID: "series_1", Name: "Nova"},
			model.Character{ID: "char_2", SeriesID: "series_2", Name: "Ash"},
		),
		options: testhelpers.NewCommissionCatalog(model.CommissionOption{ID: "comm_1", Name: "Head"}),
		styles: testhelpers.NewStyleCatalog(
			model.CommissionStyle{ID: "style_1", CommissionOptionID: "comm_1", Name: "Toony"},
			model.CommissionStyle{ID: "style_2", CommissionOptionID: "comm_2", Name: "Real"},
		),
	}
}

func newTestEngine(t *testing.T, facade handlers.StorefrontFacade, opts Options) *gin.Engine {
	t.Helper()
	if opts.RateLimitRPS == 0 {
		opts.RateLimitRPS = 1000
		opts.RateLimitBurst = 1000
	}
	engine := Setup(facade, opts, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	gin.SetMode(gin.TestMode)
	return engine
}

func do(engine *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestEngine(t, newStorefrontStub(false), Options{})

	cases := []struct {
		method, path string
		body         string
		code         int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/orders?userId=u1", "", http.StatusOK},
		{http.MethodGet, "/api/orders/order_1", "", http.StatusOK},
		{http.MethodPost, "/api/orders/create-adoption", `{"userId":"u1","character":{"name":"Nova"},"applicationData":{}}`, http.StatusCreated},
		{http.MethodPost, "/api/orders/create-commission", `{"userId":"u1","commissionStyle":{"name":"Toony"},"applicationData":{}}`, http.StatusCreated},
		{http.MethodPatch, "/api/orders/order_1", `{"status":"queued"}`, http.StatusOK},
		{http.MethodPost, "/api/orders/order_1/cancel", `{"reason":"r"}`, http.StatusOK},
		{http.MethodPost, "/api/orders/order_1/reinstate", "", http.StatusOK},
		{http.MethodPost, "/api/orders/order_1/confirm", "", http.StatusOK},
		{http.MethodDelete, "/api/orders/order_1", "", http.StatusNoContent},
		{http.MethodGet, "/api/character-series", "", http.StatusOK},
		{http.MethodGet, "/api/characters/char_1", "", http.StatusOK},
		{http.MethodGet, "/api/commissions", "", http.StatusOK},
		{http.MethodPost, "/api/commission-styles", `{"name":"Mini"}`, http.StatusCreated},
		{http.MethodPut, "/api/commissions/comm_1", `{"name":"Head+"}`, http.StatusOK},
		{http.MethodDelete, "/api/character-series/series_1", "", http.StatusNoContent},
		{http.MethodGet, "/api/site-content", "", http.StatusOK},
		{http.MethodPost, "/api/contracts", `{"adoptionContract":"x"}`, http.StatusOK},
		{http.MethodGet, "/api/theme", "", http.StatusOK},
		{http.MethodGet, "/api/apod", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body []byte
			if tc.body != "" {
				body = []byte(tc.body)
			}
			resp := do(engine, tc.method, tc.path, body, nil)
			if resp.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, resp.Code, resp.Body.String())
			}
			if resp.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatal("expected request id header")
			}
		})
	}
}

func TestCatalogQueryFilters(t *testing.T) {
	engine := newTestEngine(t, newStorefrontStub(false), Options{})

	resp := do(engine, http.MethodGet, "/api/characters?seriesId=series_1", nil, nil)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte("char_1")) || bytes.Contains(resp.Body.Bytes(), []byte("char_2")) {
		t.Fatalf("unexpected series filter response %s", resp.Body.String())
	}

	resp = do(engine, http.MethodGet, "/api/commission-styles?commissionOptionId=comm_2", nil, nil)
	if !bytes.Contains(resp.Body.Bytes(), []byte("style_2")) || bytes.Contains(resp.Body.Bytes(), []byte("style_1")) {
		t.Fatalf("unexpected option filter response %s", resp.Body.String())
	}

	resp = do(engine, http.MethodGet, "/api/characters?name=Ash", nil, nil)
	if !bytes.Contains(resp.Body.Bytes(), []byte("char_2")) {
		t.Fatalf("unexpected name lookup response %s", resp.Body.String())
	}
}

func TestAdminProtection(t *testing.T) {
	engine := newTestEngine(t, newStorefrontStub(true), Options{})

	protected := []struct{ method, path, body string }{
		{http.MethodPatch, "/api/orders/order_1", `{}`},
		{http.MethodDelete, "/api/orders/order_1", ""},
		{http.MethodPost, "/api/orders/order_1/reinstate", ""},
		{http.MethodPost, "/api/characters", `{"name":"x"}`},
		{http.MethodPut, "/api/commission-styles/style_1", `{"name":"x"}`},
		{http.MethodDelete, "/api/commissions/comm_1", ""},
		{http.MethodPost, "/api/site-content", `{}`},
		{http.MethodPost, "/api/contracts", `{}`},
	}
	for _, tc := range protected {
		var body []byte
		if tc.body != "" {
			body = []byte(tc.body)
		}
		if resp := do(engine, tc.method, tc.path, body, nil); resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, resp.Code)
		}
	}

	resp := do(engine, http.MethodPost, "/api/admin/login", []byte(`{"password":"pw"}`), nil)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte("tok")) {
		t.Fatalf("expected login to succeed, got %d %s", resp.Code, resp.Body.String())
	}

	resp = do(engine, http.MethodPatch, "/api/orders/order_1", []byte(`{"total":"1"}`), map[string]string{"Authorization": "Bearer tok"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.Code)
	}

	resp = do(engine, http.MethodPost, "/api/orders/order_1/cancel", []byte(`{"reason":"r"}`), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("customer endpoints must stay public, got %d", resp.Code)
	}
}

func TestRateLimitedEndpoints(t *testing.T) {
	engine := newTestEngine(t, newStorefrontStub(false), Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	body := []byte(`{"reason":"r"}`)
	if resp := do(engine, http.MethodPost, "/api/orders/order_1/cancel", body, nil); resp.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", resp.Code)
	}
	if resp := do(engine, http.MethodPost, "/api/orders/order_1/cancel", body, nil); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp := do(engine, http.MethodGet, "/api/orders", nil, nil); resp.Code != http.StatusOK {
		t.Fatalf("reads must not be throttled, got %d", resp.Code)
	}
}

func TestGzipAndStaticUploads(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1-a.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write upload: %v", err)
	}
	engine := newTestEngine(t, newStorefrontStub(false), Options{UploadDir: dir})

	resp := do(engine, http.MethodGet, "/uploads/1-a.png", nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "png" {
		t.Fatalf("expected static upload, got %d %q", resp.Code, resp.Body.String())
	}

	resp = do(engine, http.MethodGet, "/api/commissions", nil, map[string]string{"Accept-Encoding": "gzip"})
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, headers=%v", resp.Header())
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read gzip: %v", err)
	}
	if !bytes.Contains(data, []byte("comm_1")) {
		t.Fatalf("unexpected body %s", data)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	engine := newTestEngine(t, newStorefrontStub(false), Options{Metrics: m, MetricsHandler: m.Handler()})

	do(engine, http.MethodGet, "/api/orders", nil, nil)
	resp := do(engine, http.MethodGet, "/metrics", nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte(`suitopia_http_requests_total{method="GET",route="/api/orders",status="200"} 1`)) {
		t.Fatalf("expected request counter in metrics output")
	}
}
