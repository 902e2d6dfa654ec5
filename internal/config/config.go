// Package config loads tool configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the storage roots and diagnostics settings. Flags
// override these values; these values override the defaults.
type Config struct {
	// DataDir is the read-only root containing data/ and builds/.
	DataDir string `env:"DREAMBUILD_DATA_DIR"`
	// CustomDir is the writable root for user-authored builds.
	CustomDir string `env:"DREAMBUILD_CUSTOM_DIR"`
	// Debug enables verbose logging.
	Debug bool `env:"DREAMBUILD_DEBUG"`
}

// Load parses the environment and fills in defaults: the current
// directory for game data, custom_builds/ beneath it for user builds.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("resolve working directory: %w", err)
		}
		cfg.DataDir = wd
	}
	if cfg.CustomDir == "" {
		cfg.CustomDir = filepath.Join(cfg.DataDir, "custom_builds")
	}
	return cfg, nil
}
