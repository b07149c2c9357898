// Package config loads runtime settings from a .env file (if present) and
// environment variables, with sensible defaults for everything.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all tunable settings.
type Config struct {
	// DBPath overrides the default XDG database location.
	DBPath string `env:"MATHSPRINT_DB"`

	// TimeLimitSeconds is the default session length.
	TimeLimitSeconds int `env:"MATHSPRINT_TIME_LIMIT" envDefault:"60"`

	// FeedbackDelayMs is how long answer feedback stays on screen before
	// the next problem appears.
	FeedbackDelayMs int `env:"MATHSPRINT_FEEDBACK_DELAY_MS" envDefault:"1500"`

	// ChartMaxPoints caps the history chart series length.
	ChartMaxPoints int `env:"MATHSPRINT_CHART_POINTS" envDefault:"15"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `env:"MATHSPRINT_LOG_LEVEL" envDefault:"info"`

	// LogFile overrides the default XDG state log location.
	LogFile string `env:"MATHSPRINT_LOG_FILE"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.TimeLimitSeconds < 1 {
		cfg.TimeLimitSeconds = 60
	}
	if cfg.FeedbackDelayMs < 0 {
		cfg.FeedbackDelayMs = 1500
	}
	if cfg.ChartMaxPoints < 1 {
		cfg.ChartMaxPoints = 15
	}
	return cfg, nil
}
