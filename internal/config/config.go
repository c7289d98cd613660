// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration.
type Config struct {
	Port        int    `env:"PORT"         envDefault:"8080"`
	DBPath      string `env:"DB_PATH"      envDefault:"./data/friends.db"`
	StaticPath  string `env:"STATIC_PATH"` // empty disables static file serving
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
