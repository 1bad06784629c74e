package apod

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// FallbackTitle is shown with the fallback image.
	FallbackTitle = "The Pillars of Creation (NASA, ESA, CSA, STScI)"

	cacheTTL     = 24 * time.Hour
	maxBodyBytes = 32 << 20
)

// ErrUnavailable is returned when neither the daily nor the fallback image
// could be fetched.
var ErrUnavailable = errors.New("media service is currently unavailable")

// Media is the picture returned to the storefront. URL is a base64 data URI.
type Media struct {
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Date      string `json:"date"`
}

// Client proxies NASA's Astronomy Picture of the Day.
type Client struct {
	apiURL      string
	apiKey      string
	fallbackURL string
	httpClient  *http.Client
	logger      *slog.Logger
	now         func() time.Time

	refreshMu sync.Mutex
	mu        sync.RWMutex
	cached    *Media
	cachedAt  time.Time
}

// NewClient builds a client. An empty apiKey always serves the fallback.
func NewClient(apiURL, apiKey, fallbackURL string, logger *slog.Logger) *Client {
	return &Client{
		apiURL:      apiURL,
		apiKey:      apiKey,
		fallbackURL: fallbackURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      logger,
		now:         time.Now,
	}
}

// Get returns the cached picture while it is younger than a day and
// fetches a new one otherwise.
func (c *Client) Get(ctx context.Context) (*Media, error) {
	if media, ok := c.fresh(); ok {
		return media, nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	if media, ok := c.fresh(); ok {
		return media, nil
	}
	return c.fetch(ctx)
}

// Refresh fetches today's picture regardless of the cache.
func (c *Client) Refresh(ctx context.Context) (*Media, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	return c.fetch(ctx)
}

func (c *Client) fresh() (*Media, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached == nil || c.now().Sub(c.cachedAt) >= cacheTTL {
		return nil, false
	}
	media := *c.cached
	return &media, true
}

func (c *Client) fetch(ctx context.Context) (*Media, error) {
	media, err := c.fetchDaily(ctx)
	if err == nil {
		c.mu.Lock()
		c.cached = media
		c.cachedAt = c.now()
		c.mu.Unlock()
		c.logger.Info("apod cached", slog.String("date", media.Date))
		out := *media
		return &out, nil
	}

	c.logger.Warn("apod unavailable, using fallback image", slog.Any("error", err))
	fallback, ferr := c.fetchFallback(ctx)
	if ferr != nil {
		c.logger.Error("failed to fetch fallback image", slog.Any("error", ferr))
		return nil, ErrUnavailable
	}
	return fallback, nil
}

func (c *Client) fetchDaily(ctx context.Context) (*Media, error) {
	if c.apiKey == "" {
		return nil, errors.New("nasa api key is not configured")
	}

	endpoint, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse apod url: %w", err)
	}
	query := endpoint.Query()
	query.Set("api_key", c.apiKey)
	endpoint.RawQuery = query.Encode()

	body, _, err := c.get(ctx, endpoint.String())
	if err != nil {
		return nil, fmt.Errorf("apod request: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("apod response is not valid json")
	}

	doc := gjson.ParseBytes(body)
	if mediaType := doc.Get("media_type").String(); mediaType != "image" {
		return nil, fmt.Errorf("apod media type is %q", mediaType)
	}
	imageURL := doc.Get("hdurl").String()
	if imageURL == "" {
		imageURL = doc.Get("url").String()
	}
	if imageURL == "" {
		return nil, errors.New("apod response has no image url")
	}

	dataURI, err := c.dataURI(ctx, c.withKey(imageURL))
	if err != nil {
		return nil, err
	}
	return &Media{
		MediaType: "image",
		URL:       dataURI,
		Title:     doc.Get("title").String(),
		Date:      doc.Get("date").String(),
	}, nil
}

func (c *Client) fetchFallback(ctx context.Context) (*Media, error) {
	dataURI, err := c.dataURI(ctx, c.fallbackURL)
	if err != nil {
		return nil, err
	}
	return &Media{
		MediaType: "image",
		URL:       dataURI,
		Title:     FallbackTitle,
		Date:      c.now().UTC().Format(time.DateOnly),
	}, nil
}

// withKey appends the api key to image links hosted on api.nasa.gov.
func (c *Client) withKey(raw string) string {
	if c.apiKey == "" || !strings.Contains(raw, "api.nasa.gov") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := u.Query()
	query.Set("api_key", c.apiKey)
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) dataURI(ctx context.Context, imageURL string) (string, error) {
	body, contentType, err := c.get(ctx, imageURL)
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}
