package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	cfg.Normalize()

	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\nyaml: %+v\ngo:   %+v", cfg, Default())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
display:
  style: ascii
achievement:
  enabled: true
ssh:
  idle_timeout: 5m
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Display.Style != StyleASCII {
		t.Errorf("Style = %q, expected ascii", cfg.Display.Style)
	}
	if !cfg.Achievement.Enabled {
		t.Error("Achievement.Enabled should be overridden to true")
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.SSH.IdleTimeout)
	}

	// Untouched sections keep defaults
	if !cfg.Display.Starfield {
		t.Error("Starfield should keep its default")
	}
	if cfg.Input.HoldTicks != Default().Input.HoldTicks {
		t.Errorf("HoldTicks = %d, expected default", cfg.Input.HoldTicks)
	}
	if cfg.Achievement.URL == "" {
		t.Error("Achievement.URL should keep its default")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("display: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() with broken YAML should fail")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix, got %q", err)
	}
	if cfg != Default() {
		t.Error("failed parse should return defaults")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Display: DisplayConfig{Style: "neon"},
		Input:   InputConfig{HoldTicks: -3},
	}
	cfg.Normalize()

	def := Default()
	if cfg.Display.Style != def.Display.Style {
		t.Errorf("unknown style should fall back to %q, got %q", def.Display.Style, cfg.Display.Style)
	}
	if cfg.Input.HoldTicks != def.Input.HoldTicks {
		t.Errorf("HoldTicks = %d, expected %d", cfg.Input.HoldTicks, def.Input.HoldTicks)
	}
	if cfg.Storage.DBPath != def.Storage.DBPath || cfg.Log.File != def.Log.File {
		t.Error("empty paths should fall back to defaults")
	}
	if cfg.SSH.Address != def.SSH.Address || cfg.SSH.IdleTimeout != def.SSH.IdleTimeout {
		t.Error("empty SSH settings should fall back to defaults")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.spacebattle/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".spacebattle", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}
