package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP server settings, loaded from the environment.
type Config struct {
	Port           string  `env:"PORT" envDefault:"8080"`
	Env            string  `env:"ENV" envDefault:"development"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the server configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
