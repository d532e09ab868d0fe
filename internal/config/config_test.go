package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"rawfix/internal/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.MaxDiagnostics != 100 {
		t.Fatalf("MaxDiagnostics = %d, want 100", cfg.MaxDiagnostics)
	}
	if cfg.Color != "auto" || cfg.Paths != "auto" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Cache {
		t.Fatalf("cache must default to off")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
max-diagnostics = 5
color = "off"
cache = true

[assists]
disabled = ["add-hash"]
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxDiagnostics != 5 || cfg.Color != "off" || !cfg.Cache {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Assists.Disabled) != 1 || cfg.Assists.Disabled[0] != "add-hash" {
		t.Fatalf("disabled assists = %v", cfg.Assists.Disabled)
	}
	// Unset keys keep their defaults.
	if cfg.Paths != "auto" {
		t.Fatalf("Paths = %q, want default", cfg.Paths)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `max-diagnoztics = 5`)
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `max-diagnostics = 7`)

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := config.Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.MaxDiagnostics != 7 {
		t.Fatalf("MaxDiagnostics = %d, want 7 from the root config", cfg.MaxDiagnostics)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.MaxDiagnostics != config.Default().MaxDiagnostics {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}
