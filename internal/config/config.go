// Package config loads tool settings from rawfix.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the canonical configuration file name.
const FileName = "rawfix.toml"

// Config holds user-tunable settings. Zero values defer to built-in
// defaults and CLI flags.
type Config struct {
	// MaxDiagnostics caps diagnostics per run.
	MaxDiagnostics int `toml:"max-diagnostics"`
	// Color is "auto", "on", or "off".
	Color string `toml:"color"`
	// Paths is "auto", "absolute", "relative", or "basename".
	Paths string `toml:"paths"`
	// Cache toggles the on-disk analysis cache.
	Cache bool `toml:"cache"`

	Assists AssistsConfig `toml:"assists"`
}

// AssistsConfig controls which assists are offered.
type AssistsConfig struct {
	// Disabled lists assist IDs to suppress everywhere.
	Disabled []string `toml:"disabled"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxDiagnostics: 100,
		Color:          "auto",
		Paths:          "auto",
	}
}

// Load reads the configuration from an explicit path.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Discover walks from startDir upward looking for rawfix.toml and loads the
// first hit. Returns the defaults when no file exists anywhere up the tree.
func Discover(startDir string) (Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Default(), err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return Load(candidate)
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return Default(), statErr
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
