package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"inverted": {
		FPS: DefaultFPS, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale, Refresh: DefaultRefresh,
		Background: "snow", Foreground: "darkslategray",
	},
	"retro": {
		FPS: 4, Width: 640, Height: 480, Scale: DefaultScale, Refresh: DefaultRefresh,
		Background: "#00ff00", Foreground: "#001100",
	},
	"fast": {
		FPS: 12, Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale, Refresh: DefaultRefresh,
		Background: "darkslategray", Foreground: "snow",
	},
	"retina": {
		FPS: DefaultFPS, Width: DefaultWidth, Height: DefaultHeight, Scale: 2, Refresh: DefaultRefresh,
		Background: "midnightblue", Foreground: "gold",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

// MustPreset is GetPreset with an error for unknown names.
func MustPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
