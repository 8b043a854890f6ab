// Package shell orchestrates a desktop-shell client: it binds the
// compositor capabilities an application needs, owns its windows and
// layer surfaces, and runs the event dispatch loop.
package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application settings. Zero values fall back to
// compiled defaults.
type Config struct {
	AppID string `yaml:"app_id"`
	Title string `yaml:"title"`

	// Backend names the preferred rendering backend. Empty picks
	// the registry default.
	Backend string `yaml:"backend"`

	// FallbackWidth and FallbackHeight substitute for zero-sized
	// configure dimensions, which compositors send to mean "you
	// pick".
	FallbackWidth  int32 `yaml:"fallback_width"`
	FallbackHeight int32 `yaml:"fallback_height"`
}

func DefaultConfig() Config {
	return Config{
		AppID:          "dev.phisch.phrame",
		Title:          "phrame",
		FallbackWidth:  256,
		FallbackHeight: 256,
	}
}

// LoadConfig reads a YAML config file. A missing file is not an
// error; it just yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.AppID == "" {
		cfg.AppID = def.AppID
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.FallbackWidth <= 0 {
		cfg.FallbackWidth = def.FallbackWidth
	}
	if cfg.FallbackHeight <= 0 {
		cfg.FallbackHeight = def.FallbackHeight
	}
	return cfg
}

// FallbackSize substitutes the configured fallback for zero configure
// dimensions. Non-zero dimensions pass through untouched.
func (cfg Config) FallbackSize(w, h int32) (int32, int32) {
	if w == 0 {
		w = cfg.FallbackWidth
	}
	if h == 0 {
		h = cfg.FallbackHeight
	}
	return w, h
}
