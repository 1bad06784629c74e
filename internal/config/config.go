package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress    string `env:"RUN_ADDRESS" envDefault:":8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"`
	DatabaseURI   string `env:"DATABASE_URI"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/suitopia.db"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`

	MailAPIURL      string `env:"MAIL_API_URL" envDefault:"https://api.resend.com"`
	MailAPIKey      string `env:"MAIL_API_KEY"`
	MailFrom        string `env:"MAIL_FROM" envDefault:"notification@suitopia.club"`
	NotifyWorkers   int    `env:"NOTIFY_WORKERS" envDefault:"2"`
	NotifyQueueSize int    `env:"NOTIFY_QUEUE_SIZE" envDefault:"64"`

	NASAAPIKey      string `env:"NASA_API_KEY"`
	NASAAPIURL      string `env:"NASA_API_URL" envDefault:"https://api.nasa.gov/planetary/apod"`
	APODFallbackURL string `env:"APOD_FALLBACK_URL" envDefault:"https://www.nasa.gov/wp-content/uploads/2023/11/53342371726-1c86915121-o.jpg"`

	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTSecretFile     string        `env:"JWT_SECRET_FILE"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"5"`

	Timezone        string        `env:"TIMEZONE" envDefault:"Asia/Shanghai"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	Location *time.Location `env:"-"`
}

const (
	defaultNotifyWorkers   = 2
	defaultNotifyQueueSize = 64
	defaultUploadMaxBytes  = 10 << 20
	defaultRateLimitRPS    = 1
	defaultRateLimitBurst  = 5
	defaultTokenTTL        = 12 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("suitopia", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory with JSON documents")
	fs.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Storage driver: file, postgres or sqlite")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing admin tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.JWTSecretFile != "" {
		content, err := os.ReadFile(cfg.JWTSecretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.NotifyWorkers <= 0 {
		c.NotifyWorkers = defaultNotifyWorkers
	}
	if c.NotifyQueueSize <= 0 {
		c.NotifyQueueSize = defaultNotifyQueueSize
	}
	if c.UploadMaxBytes <= 0 {
		c.UploadMaxBytes = defaultUploadMaxBytes
	}
	if c.RateLimitRPS <= 0 {
		c.RateLimitRPS = defaultRateLimitRPS
	}
	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = defaultRateLimitBurst
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	switch c.StorageDriver {
	case StorageFile:
		if c.DataDir == "" {
			return fmt.Errorf("data directory must be provided")
		}
	case StoragePostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("database URI must be provided")
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite path must be provided")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	return nil
}

// AdminAuthEnabled reports whether admin endpoints require a token.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

// SlogLevel maps LogLevel onto slog levels; unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
