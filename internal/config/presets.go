package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets are named cadences. smooth is the default 60 Hz; classic is the
// 12.5 Hz (80 ms) cadence of the first pattern set.
var Presets = map[string]*Config{
	"smooth": {
		FPS:   60,
		Log:   LogConfig{Level: DefaultLogLevel},
		Bench: BenchConfig{Frames: DefaultBenchFrames, Width: DefaultBenchWidth, Height: DefaultBenchHeight},
	},
	"classic": {
		FPS:   12.5,
		Log:   LogConfig{Level: DefaultLogLevel},
		Bench: BenchConfig{Frames: DefaultBenchFrames, Width: DefaultBenchWidth, Height: DefaultBenchHeight},
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := *p
	return &cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
