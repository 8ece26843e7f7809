package scrollfx

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the page-wiring configuration: marquee build parameters and the
// smooth-scroll range, loadable from YAML so demos can tune motion without
// recompiling.
type Config struct {
	Marquee MarqueeConfig `yaml:"marquee"`
	Scroll  ScrollConfig  `yaml:"scroll"`
}

// MarqueeConfig holds the loop build parameters.
type MarqueeConfig struct {
	// Speed multiplies the base traversal rate (BaseSpeed units/second).
	Speed float64 `yaml:"speed"`

	// PaddingAfterLast is the wrap gap in pixels after the last item.
	PaddingAfterLast float64 `yaml:"paddingAfterLast"`

	// Repeat is the number of cycles to play; -1 repeats forever.
	Repeat int `yaml:"repeat"`

	// Gap is the layout gap between items, fed to LayoutRow.
	Gap float64 `yaml:"gap"`
}

// ScrollConfig holds the smooth-scroll emulation parameters.
type ScrollConfig struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Lerp float64 `yaml:"lerp"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Marquee: MarqueeConfig{
			Speed:            1,
			PaddingAfterLast: DefaultPadding,
			Repeat:           -1,
			Gap:              20,
		},
		Scroll: ScrollConfig{
			Min:  0,
			Max:  1000,
			Lerp: 0.1,
		},
	}
}

// LoadConfig parses YAML over the defaults and validates the result, so a
// partial file only overrides the fields it names.
func LoadConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scrollfx: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scrollfx: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate checks that the configuration can produce well-behaved motion.
func (c *Config) Validate() error {
	if c.Marquee.Speed <= 0 {
		return fmt.Errorf("%w: marquee speed %g must be positive", ErrInvalidConfig, c.Marquee.Speed)
	}
	if c.Marquee.PaddingAfterLast < 0 {
		return fmt.Errorf("%w: marquee paddingAfterLast %g must not be negative", ErrInvalidConfig, c.Marquee.PaddingAfterLast)
	}
	if c.Marquee.Repeat < -1 {
		return fmt.Errorf("%w: marquee repeat %d must be -1 or greater", ErrInvalidConfig, c.Marquee.Repeat)
	}
	if c.Marquee.Gap < 0 {
		return fmt.Errorf("%w: marquee gap %g must not be negative", ErrInvalidConfig, c.Marquee.Gap)
	}
	if c.Scroll.Lerp <= 0 || c.Scroll.Lerp > 1 {
		return fmt.Errorf("%w: scroll lerp %g must be in (0, 1]", ErrInvalidConfig, c.Scroll.Lerp)
	}
	if c.Scroll.Max < c.Scroll.Min {
		return fmt.Errorf("%w: scroll range [%g, %g] is reversed", ErrInvalidConfig, c.Scroll.Min, c.Scroll.Max)
	}
	return nil
}

// Options converts the marquee section to LoopOptions.
func (m MarqueeConfig) Options() LoopOptions {
	return LoopOptions{
		Repeat:           m.Repeat,
		PaddingAfterLast: m.PaddingAfterLast,
		Speed:            m.Speed,
	}
}

// Scroller constructs a Scroller over the configured range.
func (s ScrollConfig) Scroller() *Scroller {
	return NewScroller(s.Min, s.Max, s.Lerp)
}
