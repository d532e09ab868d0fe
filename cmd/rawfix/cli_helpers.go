package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rawfix/internal/config"
	"rawfix/internal/diagfmt"
	"rawfix/internal/driver"
)

// loadConfig resolves the effective configuration: an explicit --config path
// wins, otherwise rawfix.toml is discovered upward from the working
// directory.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Default(), err
	}
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), err
	}
	return config.Discover(wd)
}

// colorEnabled decides whether output should be colorized, from the flag,
// the config, and finally tty detection.
func colorEnabled(cmd *cobra.Command, cfg config.Config) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	if mode == "" {
		mode = cfg.Color
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on, or off)", mode)
	}
}

func pathMode(cfg config.Config) diagfmt.PathMode {
	switch cfg.Paths {
	case "absolute":
		return diagfmt.PathModeAbsolute
	case "relative":
		return diagfmt.PathModeRelative
	case "basename":
		return diagfmt.PathModeBasename
	default:
		return diagfmt.PathModeAuto
	}
}

// driverOptions assembles analysis options from flags and config, opening
// the disk cache when enabled.
func driverOptions(cmd *cobra.Command, cfg config.Config) (*driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.MaxDiagnostics
	}

	opts := &driver.Options{
		MaxDiagnostics:  maxDiagnostics,
		DisabledAssists: cfg.Assists.Disabled,
	}
	if cfg.Cache {
		cache, err := driver.OpenDiskCache("rawfix")
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && q
}
