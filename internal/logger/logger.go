package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/suitopia/internal/config"
)

// New creates a JSON slog.Logger writing to stdout at the given level.
func New(level slog.Level) *slog.Logger {
	return newWithWriter(os.Stdout, level)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "suitopia"))
}

// FromConfig builds the process logger from LOG_LEVEL.
func FromConfig(cfg *config.Config) *slog.Logger {
	return New(cfg.SlogLevel())
}
