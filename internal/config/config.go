package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present; a missing file is not an error.
const DefaultEnvFile = ".env"

// App holds runtime configuration for the game.
type App struct {
	Env string `env:"MATHADVENTURE_ENV" envDefault:"development"`

	Log     Log
	Game    Game
	Metrics Metrics
}

// Log configures structured logging. The terminal belongs to the UI, so
// logs go to a file or nowhere.
type Log struct {
	File  string `env:"MATHADVENTURE_LOG_FILE"`
	Level string `env:"MATHADVENTURE_LOG_LEVEL" envDefault:"info"`
}

// Game groups gameplay defaults.
type Game struct {
	// Tier preselects a level ("2-4", "4-8", "8+"); empty shows level select.
	Tier string `env:"MATHADVENTURE_TIER"`

	// Seed makes problem generation deterministic when non-zero.
	Seed uint64 `env:"MATHADVENTURE_SEED"`

	// RoundLength ends the round after this many answers; 0 plays forever.
	RoundLength int `env:"MATHADVENTURE_ROUND_LENGTH" envDefault:"0"`

	// FeedbackDelay is how long feedback stays up before the next problem.
	FeedbackDelay time.Duration `env:"MATHADVENTURE_FEEDBACK_DELAY" envDefault:"1500ms"`
}

// Metrics configures the optional Prometheus endpoint.
type Metrics struct {
	// Addr is the listen address, e.g. "127.0.0.1:9090". Empty disables it.
	Addr string `env:"MATHADVENTURE_METRICS_ADDR"`
}

// Load reads envFile into the process environment and then parses
// environment variables into App. An empty envFile means DefaultEnvFile,
// which may be absent; a named file must exist.
func Load(envFile string) (*App, error) {
	optional := envFile == ""
	if optional {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *App) Validate() error {
	if c.Game.RoundLength < 0 {
		return fmt.Errorf("round length must not be negative, got %d", c.Game.RoundLength)
	}
	if c.Game.FeedbackDelay < 0 {
		return fmt.Errorf("feedback delay must not be negative, got %s", c.Game.FeedbackDelay)
	}
	return nil
}
