// Package config reads launcher settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the few knobs the launcher exposes. Splash text and sizes are fixed.
type Config struct {
	LogLevel string `env:"LOADSPLASH_LOG_LEVEL" envDefault:"info"`
	// OSName replaces the detected platform name when set.
	OSName string `env:"LOADSPLASH_OS_NAME"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
