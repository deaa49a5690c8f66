package config

// Overrides holds values set explicitly on the command line. Nil fields
// were not set.
type Overrides struct {
	FPS        *float64
	Width      *int
	Height     *int
	Scale      *float64
	Background *string
	Foreground *string
}

// Resolve layers the defaults, the named preset, the YAML file at path and
// the overrides, in that order, and validates the result. Empty preset or
// path skip that layer.
func Resolve(preset, path string, o Overrides) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		p, err := MustPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if path != "" {
		if err := LoadInto(cfg, path); err != nil {
			return nil, err
		}
	}
	o.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o Overrides) apply(cfg *Config) {
	if o.FPS != nil {
		cfg.FPS = *o.FPS
	}
	if o.Width != nil {
		cfg.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Height = *o.Height
	}
	if o.Scale != nil {
		cfg.Scale = *o.Scale
	}
	if o.Background != nil {
		cfg.Background = *o.Background
	}
	if o.Foreground != nil {
		cfg.Foreground = *o.Foreground
	}
}
