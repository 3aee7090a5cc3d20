package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS         = 60.0
	DefaultLogLevel    = "warn"
	DefaultBenchFrames = 300
	DefaultBenchWidth  = 120
	DefaultBenchHeight = 40

	MaxFPS = 240.0
)

var (
	ErrInvalidFPS   = errors.New("config: fps out of range")
	ErrInvalidLevel = errors.New("config: unknown log level")
	ErrInvalidBench = errors.New("config: bench frames and size must be positive")
)

type Config struct {
	FPS         float64     `yaml:"fps"`
	Interactive bool        `yaml:"interactive"`
	Log         LogConfig   `yaml:"log"`
	Bench       BenchConfig `yaml:"bench"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type BenchConfig struct {
	Frames int `yaml:"frames"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS: DefaultFPS,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Bench: BenchConfig{
			Frames: DefaultBenchFrames,
			Width:  DefaultBenchWidth,
			Height: DefaultBenchHeight,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, which is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval is the sleep between two frames.
func (c *Config) Interval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: %v (want 0 < fps <= %v)", ErrInvalidFPS, c.FPS, MaxFPS)
	}
	level := strings.ToLower(c.Log.Level)
	valid := false
	for _, l := range logLevels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	if c.Bench.Frames <= 0 || c.Bench.Width <= 0 || c.Bench.Height <= 0 {
		return ErrInvalidBench
	}
	return nil
}
