// Package config loads the demo configuration from a TOML file with
// environment overrides. The library packages take plain values; only the
// demo binary reads files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LayoutConfig selects the layout variant
type LayoutConfig struct {
	// Orientation is "portrait" or "landscape"
	Orientation string `toml:"orientation"`

	// Tablet widens the edge piles and disables overshoot tilt
	Tablet bool `toml:"tablet"`

	// DragThreshold in cells before a touch becomes a drag
	DragThreshold float64 `toml:"drag_threshold"`
}

// ThemeConfig holds the surface colors as #rrggbb strings; empty entries
// keep the built-in theme
type ThemeConfig struct {
	Background string `toml:"background"`
	CardBody   string `toml:"card_body"`
	CardBorder string `toml:"card_border"`
	CardTitle  string `toml:"card_title"`
	Selected   string `toml:"selected"`
}

// AudioConfig toggles gesture feedback
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

// Config is the demo configuration
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Theme  ThemeConfig  `toml:"theme"`
	Audio  AudioConfig  `toml:"audio"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Orientation:   "portrait",
			DragThreshold: 1,
		},
		Audio: AudioConfig{Enabled: false, Volume: 0.6},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tabstack", "config.toml")
	}
	return "tabstack.toml"
}

// Load reads path, creating it with defaults when missing, then applies
// environment overrides: TABSTACK_ORIENTATION, TABSTACK_TABLET
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("config: write defaults: %w", err)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if v := os.Getenv("TABSTACK_ORIENTATION"); v != "" {
		cfg.Layout.Orientation = v
	}
	if v := os.Getenv("TABSTACK_TABLET"); v != "" {
		cfg.Layout.Tablet = v == "1" || v == "true"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

func (c *Config) validate() error {
	switch c.Layout.Orientation {
	case "portrait", "landscape":
	default:
		return fmt.Errorf("config: unknown orientation %q", c.Layout.Orientation)
	}
	if c.Layout.DragThreshold < 0 {
		return fmt.Errorf("config: negative drag threshold %f", c.Layout.DragThreshold)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: volume %f outside [0, 1]", c.Audio.Volume)
	}
	return nil
}
