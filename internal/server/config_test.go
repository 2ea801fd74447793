package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/quickcalc/internal/config"
	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Fatalf("expected default max request size, got %d", cfg.RequestSizeBytes())
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
	if cfg.Defaults.TipPercent != constants.DefaultTipPercent || cfg.Defaults.People != constants.DefaultPeople ||
		cfg.Defaults.UnitSystem != constants.DefaultUnitSystem {
		t.Fatalf("unexpected calculator defaults %+v", cfg.Defaults)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxRequestSize: 16K
logging:
  level: debug
  format: console
defaults:
  unitSystem: Imperial
  people: 0
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 16*1024 {
		t.Fatalf("expected max request override, got %d", cfg.RequestSizeBytes())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Defaults.UnitSystem != "imperial" {
		t.Fatalf("expected canonical imperial unit system, got %q", cfg.Defaults.UnitSystem)
	}
	if cfg.Defaults.People != constants.DefaultPeople {
		t.Fatalf("expected people below 1 to reset to %d, got %d", constants.DefaultPeople, cfg.Defaults.People)
	}
	if cfg.Defaults.TipPercent != constants.DefaultTipPercent {
		t.Fatalf("expected untouched tip percent default, got %v", cfg.Defaults.TipPercent)
	}
}

func TestLoadConfigInvalidDefaults(t *testing.T) {
	tests := map[string]string{
		"unknown unit system": "defaults:\n  unitSystem: stone\n",
		"negative tip":        "defaults:\n  tipPercent: -5\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server-config.yaml")
			if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("expected error for invalid defaults but got nil")
			}
		})
	}
}

func TestRequestDefaultsFromHandBuiltConfig(t *testing.T) {
	cfg := &Config{Defaults: config.DefaultsConfig{TipPercent: -3, People: 0, UnitSystem: "stone"}}
	got := cfg.requestDefaults()
	if got.tipPercent != 0 || got.people != 1 || got.units != calc.Metric {
		t.Fatalf("unexpected resolved defaults %+v", got)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Fatalf("expected default size for zero config, got %d", cfg.RequestSizeBytes())
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	if err := os.WriteFile(path, []byte("maxRequestSize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestSetRequestSizeBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetRequestSizeBytes(2048)
	if cfg.RequestSizeBytes() != 2048 || cfg.MaxRequestSize != "2048" {
		t.Fatalf("unexpected size after override: %d (%s)", cfg.RequestSizeBytes(), cfg.MaxRequestSize)
	}

	cfg.SetRequestSizeBytes(0)
	if cfg.RequestSizeBytes() != 2048 {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.RequestSizeBytes())
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxRequestSizeBytes,
		"1024":      1024,
		"512b":      512,
		"64K":       64 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1GB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
	if _, err := ParseSize("0K"); err == nil {
		t.Fatal("expected error for zero size")
	}
	if _, err := ParseSize("9223372036854775807M"); err == nil {
		t.Fatal("expected error for overflowing size")
	}
}
