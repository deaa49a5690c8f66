package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/san-kum/sierpinski/internal/fractal"
	"github.com/san-kum/sierpinski/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS     = 2.0
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultScale   = 1.0
	DefaultRefresh = time.Second / 60
)

var (
	ErrInvalidFPS     = errors.New("config: fps must be positive")
	ErrInvalidSize    = errors.New("config: width and height must be positive")
	ErrInvalidScale   = errors.New("config: scale must be positive")
	ErrInvalidRefresh = errors.New("config: refresh must be positive")
	ErrUnknownPreset  = errors.New("config: unknown preset")
)

type Config struct {
	FPS        float64       `yaml:"fps"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Scale      float64       `yaml:"scale"`
	Refresh    time.Duration `yaml:"refresh"`
	Background string        `yaml:"background"`
	Foreground string        `yaml:"foreground"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:        DefaultFPS,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Scale:      DefaultScale,
		Refresh:    DefaultRefresh,
		Background: render.Background.Name,
		Foreground: render.Foreground.Name,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg. Keys missing from the file keep
// their current values.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field and resolves both colors.
func (c *Config) Validate() error {
	if !(c.FPS > 0) || math.IsInf(c.FPS, 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidFPS, c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w, got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidScale, c.Scale)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidRefresh, c.Refresh)
	}
	_, _, err := c.Styles()
	return err
}

// Styles resolves the background and foreground colors.
func (c *Config) Styles() (bg, fg render.FillStyle, err error) {
	if bg, err = render.ParseFillStyle(c.Background); err != nil {
		return bg, fg, fmt.Errorf("config: background: %w", err)
	}
	if fg, err = render.ParseFillStyle(c.Foreground); err != nil {
		return bg, fg, fmt.Errorf("config: foreground: %w", err)
	}
	return bg, fg, nil
}

// SessionOptions validates the config and converts it for fractal.NewSession.
func (c *Config) SessionOptions() (fractal.Options, error) {
	if err := c.Validate(); err != nil {
		return fractal.Options{}, err
	}
	bg, fg, _ := c.Styles()
	return fractal.Options{FPS: c.FPS, Background: bg, Foreground: fg}, nil
}
