// Package config loads the optional stegamoji configuration file.
//
// The file is TOML, by default $HOME/.stegamoji/config.toml:
//
//	default_carrier = "🔒"
//	default_scheme  = "tag"
//
// A missing file yields the built-in defaults; a present but malformed file
// is an error, as is an unknown scheme name.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"stegamoji/internal/domain"
)

const (
	// DefaultCarrier is used when neither the config file nor the command
	// line supplies one.
	DefaultCarrier = "🔒"
	// DefaultScheme is the encoding scheme used when none is configured.
	DefaultScheme = domain.SchemeTag
)

// Config holds user defaults for the CLI.
type Config struct {
	DefaultCarrier string `toml:"default_carrier"`
	DefaultScheme  string `toml:"default_scheme"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".stegamoji", "config.toml"), nil
}

// Load reads the config at path, filling in defaults for absent fields.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{
		DefaultCarrier: DefaultCarrier,
		DefaultScheme:  DefaultScheme.String(),
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DefaultCarrier == "" {
		cfg.DefaultCarrier = DefaultCarrier
	}
	if cfg.DefaultScheme == "" {
		cfg.DefaultScheme = DefaultScheme.String()
	}
	if _, err := domain.ParseScheme(cfg.DefaultScheme, false); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Scheme returns the configured default scheme as a domain.Scheme. Load has
// already validated it.
func (c Config) Scheme() domain.Scheme {
	return domain.Scheme(c.DefaultScheme)
}
