package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fkcurrie/st7920-display-golang/internal/types"
)

// ErrInvalid is returned by Validate for unusable settings
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Display   types.DisplayConfig   `json:"display"`
	Text      types.TextConfig      `json:"text"`
	Banner    types.BannerConfig    `json:"banner"`
	Dashboard types.DashboardConfig `json:"dashboard"`
	Preview   types.PreviewConfig   `json:"preview"`
}

// LoadConfig loads the configuration from a file. Settings missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: types.DisplayConfig{
			Driver:       "st7920",
			Width:        128,
			Height:       64,
			PageRows:     8,
			GPIOBackend:  "gpiocdev",
			GPIOChip:     "gpiochip0",
			CSPin:        5,
			ResetPin:     19,
			SnapshotPath: "frame.png",
		},
		Text: types.TextConfig{
			Text:    "Novotec",
			X:       14,
			Y:       40,
			Font:    types.FontConfig{Name: "gobold", Size: 21},
			DelayMs: 30,
		},
		Banner: types.BannerConfig{
			Text:     "Novotec ",
			Baseline: 45,
			Font:     types.FontConfig{Name: "gobold", Size: 30},
			DelayMs:  30,
		},
		Dashboard: types.DashboardConfig{
			ValueFont:      types.FontConfig{Name: "gobold", Size: 14},
			LabelFont:      types.FontConfig{Name: "basic"},
			DelayMs:        100,
			PollIntervalMs: 2000,
			Sensor: types.SensorConfig{
				Kind:        "static",
				I2CAddr:     0x76,
				Temperature: 21.5,
				Humidity:    45,
			},
		},
		Preview: types.PreviewConfig{
			Scale: 4,
		},
	}
}

// Validate checks the settings that would otherwise fail deep inside a driver
func (c *Config) Validate() error {
	d := c.Display
	switch d.Driver {
	case "st7920", "png":
	default:
		return fmt.Errorf("%w: unknown display driver %q", ErrInvalid, d.Driver)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, d.Width, d.Height)
	}
	if d.PageRows <= 0 || d.PageRows%8 != 0 {
		return fmt.Errorf("%w: page rows must be a positive multiple of 8, got %d", ErrInvalid, d.PageRows)
	}
	for name, ms := range map[string]int{
		"text":      c.Text.DelayMs,
		"banner":    c.Banner.DelayMs,
		"dashboard": c.Dashboard.DelayMs,
	} {
		if ms < 0 {
			return fmt.Errorf("%w: negative %s delay", ErrInvalid, name)
		}
	}
	if c.Banner.Text == "" {
		return fmt.Errorf("%w: empty banner text", ErrInvalid)
	}
	switch c.Dashboard.Sensor.Kind {
	case "static", "bme280":
	default:
		return fmt.Errorf("%w: unknown sensor %q", ErrInvalid, c.Dashboard.Sensor.Kind)
	}
	return nil
}
