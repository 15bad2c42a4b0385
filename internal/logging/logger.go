package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/mathadventure/internal/config"
)

const appName = "mathadventure"

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return zerolog.Ctx(context.Background())
	}
	return zerolog.Ctx(ctx)
}

// IntoContext injects a logger into context for downstream use.
func IntoContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// New builds a structured logger from cfg. With no log file configured it
// returns a no-op logger, since stdout belongs to the terminal UI. The
// returned closer releases the log file and is never nil.
func New(cfg config.Log, env string) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	return NewWithWriter(f, level, env), f, nil
}

// NewWithWriter builds a logger writing JSON lines to w.
func NewWithWriter(w io.Writer, level zerolog.Level, env string) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("app", appName).
		Str("env", env).
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
