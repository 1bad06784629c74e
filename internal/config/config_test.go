package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, map[string]string{})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":8080" {
		t.Errorf("expected default run address, got %q", cfg.RunAddress)
	}
	if cfg.StorageDriver != StorageFile {
		t.Errorf("expected file storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.MailFrom != "notification@suitopia.club" {
		t.Errorf("unexpected default sender %q", cfg.MailFrom)
	}
	if cfg.NotifyWorkers != defaultNotifyWorkers || cfg.NotifyQueueSize != defaultNotifyQueueSize {
		t.Errorf("unexpected notify defaults %d/%d", cfg.NotifyWorkers, cfg.NotifyQueueSize)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Errorf("expected default token ttl, got %v", cfg.TokenTTL)
	}
	if cfg.Location == nil || cfg.Location.String() != "Asia/Shanghai" {
		t.Errorf("expected default location, got %v", cfg.Location)
	}
	if cfg.AdminAuthEnabled() {
		t.Error("admin auth must be disabled without password hash")
	}
}

func TestLoadEnvAndFlagOverrides(t *testing.T) {
	environ := map[string]string{
		"RUN_ADDRESS":         ":7070",
		"STORAGE_DRIVER":      "sqlite",
		"SQLITE_PATH":         "/tmp/suitopia.db",
		"NOTIFY_WORKERS":      "5",
		"BASE_URL":            "https://suitopia.club/",
		"ADMIN_PASSWORD_HASH": "$2a$10$hash",
		"TIMEZONE":            "UTC",
		"LOG_LEVEL":           "debug",
	}
	args := []string{
		"-a", ":9090",
		"-storage", "postgres",
		"-d", "postgres://override",
		"--shutdown-timeout", "20s",
		"--jwt-secret", "flag-secret",
	}

	cfg, err := load(args, environ)
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected flag to override env, got %q", cfg.RunAddress)
	}
	if cfg.StorageDriver != StoragePostgres || cfg.DatabaseURI != "postgres://override" {
		t.Errorf("unexpected storage %q %q", cfg.StorageDriver, cfg.DatabaseURI)
	}
	if cfg.NotifyWorkers != 5 {
		t.Errorf("expected 5 workers, got %d", cfg.NotifyWorkers)
	}
	if cfg.BaseURL != "https://suitopia.club" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected 20s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.JWTSecret != "flag-secret" {
		t.Errorf("expected flag secret, got %q", cfg.JWTSecret)
	}
	if !cfg.AdminAuthEnabled() {
		t.Error("admin auth must be enabled with password hash")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestLoadNormalisesNonPositive(t *testing.T) {
	cfg, err := load(nil, map[string]string{
		"NOTIFY_WORKERS":    "0",
		"NOTIFY_QUEUE_SIZE": "-1",
		"UPLOAD_MAX_BYTES":  "0",
		"RATE_LIMIT_RPS":    "0",
		"RATE_LIMIT_BURST":  "-3",
		"TOKEN_TTL":         "0s",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NotifyWorkers != defaultNotifyWorkers || cfg.NotifyQueueSize != defaultNotifyQueueSize {
		t.Errorf("notify settings not normalised: %d/%d", cfg.NotifyWorkers, cfg.NotifyQueueSize)
	}
	if cfg.UploadMaxBytes != defaultUploadMaxBytes {
		t.Errorf("upload limit not normalised: %d", cfg.UploadMaxBytes)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Errorf("rate limit not normalised: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Errorf("token ttl not normalised: %v", cfg.TokenTTL)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		args    []string
		environ map[string]string
	}{
		"postgres without dsn": {environ: map[string]string{"STORAGE_DRIVER": "postgres"}},
		"unknown driver":       {args: []string{"-storage", "mongo"}},
		"bad timezone":         {environ: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		"bad duration env":     {environ: map[string]string{"TOKEN_TTL": "soon"}},
		"bad shutdown flag":    {args: []string{"--shutdown-timeout", "later"}},
		"unknown flag":         {args: []string{"--nope"}},
		"missing secret file":  {environ: map[string]string{"JWT_SECRET_FILE": "/does/not/exist"}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			environ := tc.environ
			if environ == nil {
				environ = map[string]string{}
			}
			if _, err := load(tc.args, environ); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	cfg, err := load(nil, map[string]string{"JWT_SECRET_FILE": path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.JWTSecret)
	}
}

func TestSlogLevelFallback(t *testing.T) {
	cfg := &Config{LogLevel: "loud"}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected info fallback, got %v", cfg.SlogLevel())
	}
}
