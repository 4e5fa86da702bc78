package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAnimation      = "cnn"
	DefaultFrameRate      = 60
	DefaultInfoPanelDelay = 3000
	DefaultWidth          = 1280
	DefaultHeight         = 800
	DefaultLogLevel       = "info"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Animation string `yaml:"animation"`
	Dark      bool   `yaml:"dark"`
	Topbar    bool   `yaml:"topbar"`
	FrameRate int    `yaml:"frame_rate"`
	// InfoPanelDelay is in milliseconds.
	InfoPanelDelay int          `yaml:"info_panel_delay"`
	Readout        bool         `yaml:"readout"`
	Window         WindowConfig `yaml:"window"`
	Log            LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Font is a ttf file for the window chrome; empty uses raylib's
	// built-in font.
	Font string `yaml:"font,omitempty"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Animation:      DefaultAnimation,
		Dark:           true,
		Topbar:         true,
		FrameRate:      DefaultFrameRate,
		InfoPanelDelay: DefaultInfoPanelDelay,
		Readout:        true,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks ranges. Whether Animation names a registered sketch is
// left to the session, which owns the registry.
func (c *Config) Validate() error {
	switch {
	case c.Animation == "":
		return fmt.Errorf("%w: animation is empty", ErrInvalid)
	case c.FrameRate < 1 || c.FrameRate > 240:
		return fmt.Errorf("%w: frame_rate %d outside 1..240", ErrInvalid, c.FrameRate)
	case c.InfoPanelDelay < 0:
		return fmt.Errorf("%w: info_panel_delay %d is negative", ErrInvalid, c.InfoPanelDelay)
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Log.Level != "" && !logLevels[c.Log.Level]:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// PanelDelay returns InfoPanelDelay as a duration; zero means the default.
func (c *Config) PanelDelay() time.Duration {
	return time.Duration(c.InfoPanelDelay) * time.Millisecond
}
