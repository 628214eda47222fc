// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings for the service.
type Config struct {
	// DataFile is the path of the JSON document holding all wheels.
	DataFile string `env:"WHEELSPIN_DATA_FILE" envDefault:"wheels.json"`
	// Addr is the listen address for the HTTP server.
	Addr string `env:"WHEELSPIN_ADDR" envDefault:":8080"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
