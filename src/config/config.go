package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Handler        string        `env:"_HANDLER"`
	Region         string        `env:"AWS_REGION"`
	BucketName     string        `env:"BUCKET_NAME"`
	PokeApiBaseUrl string        `env:"POKEAPI_BASE_URL" envDefault:"https://pokeapi.co/api/v2/"`
	PokeApiTimeout time.Duration `env:"POKEAPI_TIMEOUT" envDefault:"10s"`
	Language       string        `env:"POKEPEDIA_LANGUAGE" envDefault:"en"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PokeApiTimeout <= 0 {
		return nil, fmt.Errorf("POKEAPI_TIMEOUT must be positive, got %s", cfg.PokeApiTimeout)
	}
	return &cfg, nil
}
