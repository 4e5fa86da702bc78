package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Animation != "cnn" {
		t.Errorf("expected animation cnn, got %s", cfg.Animation)
	}
	if !cfg.Dark || !cfg.Topbar {
		t.Error("expected dark theme with visible topbar")
	}
	if cfg.PanelDelay() != 3000*time.Millisecond {
		t.Errorf("panel delay = %v", cfg.PanelDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("daylight")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Dark {
		t.Error("daylight preset should be light")
	}

	cfg.Animation = "grid"
	if Presets["daylight"].Animation == "grid" {
		t.Error("GetPreset returned the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	want := []string{"bench", "daylight", "default", "presentation"}
	got := ListPresets()
	if len(got) != len(want) {
		t.Fatalf("presets = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("presets[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty animation", func(c *Config) { c.Animation = "" }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"huge frame rate", func(c *Config) { c.FrameRate = 1000 }},
		{"negative delay", func(c *Config) { c.InfoPanelDelay = -1 }},
		{"negative window", func(c *Config) { c.Window.Width = -5 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", tt.name, err)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchdeck.yaml")
	if err := os.WriteFile(path, []byte("animation: wave\ndark: false\nwindow:\n  width: 640\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Animation != "wave" || cfg.Dark {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != DefaultHeight {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("frame rate = %d, want default", cfg.FrameRate)
	}
	if cfg.Window.Font != "" {
		t.Errorf("font = %q, want built-in", cfg.Window.Font)
	}
}

func TestLoadWindowFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchdeck.yaml")
	if err := os.WriteFile(path, []byte("window:\n  font: /tmp/mono.ttf\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Font != "/tmp/mono.ttf" || cfg.Window.Width != DefaultWidth {
		t.Errorf("window = %+v", cfg.Window)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("presentation")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
