package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Pricing-data provider; when unset, the built-in static catalog is
	// used and no network calls happen.
	CatalogBaseURL string `env:"CATALOG_BASE_URL"`
	CatalogAPIKey  string `env:"CATALOG_API_KEY"`

	// Optional redis cache in front of the catalog.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"6h"`

	// YAML overlay for the reference tables.
	RefDataFile string `env:"REFDATA_FILE"`

	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CatalogBaseURL != "" && cfg.CatalogAPIKey == "" {
		return nil, fmt.Errorf("CATALOG_API_KEY is required when CATALOG_BASE_URL is set")
	}

	return &cfg, nil
}
