package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"presentation": {
		Animation: "cnn", Dark: true, Topbar: false, FrameRate: 60,
		InfoPanelDelay: 5000, Readout: false,
		Window: WindowConfig{Width: 1920, Height: 1080},
		Log:    LogConfig{Level: "warn"},
	},
	"daylight": {
		Animation: "wave", Dark: false, Topbar: true, FrameRate: 60,
		InfoPanelDelay: 3000, Readout: true,
		Window: WindowConfig{Width: 1280, Height: 800},
		Log:    LogConfig{Level: "info"},
	},
	"bench": {
		Animation: "particles", Dark: true, Topbar: true, FrameRate: 240,
		InfoPanelDelay: 1000, Readout: true,
		Window: WindowConfig{Width: 1280, Height: 800},
		Log:    LogConfig{Level: "debug"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
