package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "key", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "key", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPClientSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer re_test" {
			t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL+"/v1", "re_test", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email := model.Email{To: "admin@suitopia.club", From: "notification@suitopia.club", Subject: "hi", HTML: "<p>hi</p>"}
	if err := client.Send(context.Background(), email); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.To) != 1 || got.To[0] != email.To || got.From != email.From || got.Subject != "hi" || got.HTML != "<p>hi</p>" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestHTTPClientSendErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "7")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			check: func(t *testing.T, err error) {
				var rl RateLimitedError
				if !errors.As(err, &rl) || rl.RetryAfter != 7*time.Second {
					t.Fatalf("expected rate limit error, got %v", err)
				}
			},
		},
		{
			name: "provider rejects",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"message":"invalid from"}`))
			},
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected error")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			client, err := NewHTTPClient(srv.URL, "key", testLogger())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, client.Send(context.Background(), model.Email{To: "a@b.c"}))
		})
	}
}

func TestHTTPClientSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewHTTPClient(url, "key", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.Send(context.Background(), model.Email{To: "a@b.c"}); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if d := parseRetryAfter(""); d != time.Second {
		t.Fatalf("expected default, got %v", d)
	}
	if d := parseRetryAfter("3"); d != 3*time.Second {
		t.Fatalf("expected 3s, got %v", d)
	}
	if d := parseRetryAfter("garbage"); d != time.Second {
		t.Fatalf("expected default for garbage, got %v", d)
	}
	future := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
	if d := parseRetryAfter(future); d <= 0 || d > time.Minute {
		t.Fatalf("unexpected http-date duration %v", d)
	}
}

func TestDisabledSenderLogs(t *testing.T) {
	var buf bytes.Buffer
	d := Disabled{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
	if err := d.Send(context.Background(), model.Email{To: "a@b.c", Subject: "s"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("mail delivery disabled")) {
		t.Fatalf("expected log entry, got %s", buf.String())
	}
}
