package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("VALVO_CONFIG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Tier != "beginner" {
		t.Errorf("Tier = %q, want beginner", cfg.Tier)
	}
	if cfg.Questions != 20 || cfg.Lives != 3 || cfg.IntervalMs != 2000 {
		t.Errorf("session defaults = %d/%d/%d, want 20/3/2000",
			cfg.Questions, cfg.Lives, cfg.IntervalMs)
	}
	if cfg.Instrument != "trumpet" {
		t.Errorf("Instrument = %q, want trumpet", cfg.Instrument)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VALVO_TIER", "advanced")
	t.Setenv("VALVO_INTERVAL_MS", "1500")
	t.Setenv("VALVO_INSTRUMENT", "french-horn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Tier != "advanced" {
		t.Errorf("Tier = %q, want advanced", cfg.Tier)
	}
	if cfg.IntervalMs != 1500 {
		t.Errorf("IntervalMs = %d, want 1500", cfg.IntervalMs)
	}
	if cfg.Instrument != "french-horn" {
		t.Errorf("Instrument = %q, want french-horn", cfg.Instrument)
	}
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valvo.yaml")
	yaml := "tier: advanced\nquestions: 10\nmode: speed\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VALVO_CONFIG", path)
	t.Setenv("VALVO_QUESTIONS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != "speed" {
		t.Errorf("Mode = %q, want speed from file", cfg.Mode)
	}
	if cfg.Questions != 12 {
		t.Errorf("Questions = %d, want env override 12", cfg.Questions)
	}
	if cfg.Tier != "advanced" {
		t.Errorf("Tier = %q, want advanced from file", cfg.Tier)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad tier", "VALVO_TIER", "expert"},
		{"bad mode", "VALVO_MODE", "zen"},
		{"zero lives", "VALVO_LIVES", "0"},
		{"negative interval", "VALVO_INTERVAL_MS", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}
