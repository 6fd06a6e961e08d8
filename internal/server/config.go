package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP API settings, loaded from environment variables.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// ByteSize is the payload width of generated identifiers.
	ByteSize int `env:"ID_BYTE_SIZE" envDefault:"15"`

	// MaxBatch caps the count parameter of the generate endpoint.
	MaxBatch int `env:"ID_MAX_BATCH" envDefault:"100"`

	// ShutdownTimeout bounds graceful shutdown on termination.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ByteSize < 1 {
		return Config{}, fmt.Errorf("ID_BYTE_SIZE must be at least 1, got %d", cfg.ByteSize)
	}
	if cfg.MaxBatch < 1 {
		return Config{}, fmt.Errorf("ID_MAX_BATCH must be at least 1, got %d", cfg.MaxBatch)
	}
	return cfg, nil
}
