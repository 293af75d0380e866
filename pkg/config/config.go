// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/camview/pkg/pipeline"
	"github.com/user/camview/pkg/session"
)

// Config represents the full configuration for camview.
type Config struct {
	// Capture
	Device     int `yaml:"device"`
	IntervalMs int `yaml:"interval_ms"`

	// Processing
	Grayscale   bool   `yaml:"grayscale"`
	OverlayPath string `yaml:"overlay"`

	// Histogram rendering
	Theme ThemeConfig `yaml:"theme"`

	// Presentation
	OutputDir   string `yaml:"output_dir"`
	FitWidth    int    `yaml:"fit_width"`
	KeepHistory bool   `yaml:"keep_history"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// ThemeConfig represents histogram canvas theming options.
type ThemeConfig struct {
	BackgroundColor string `yaml:"background_color"`
	InkColor        string `yaml:"ink_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Capture: device 0 at ~30 Hz
		Device:     0,
		IntervalMs: 33,

		// Histogram
		Theme: ThemeConfig{
			BackgroundColor: "#000000",
			InkColor:        "#ffffff",
		},

		// Presentation
		OutputDir: "./out",
		FitWidth:  600,

		// Logging
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		rgb[i] = hexValue(hex[i*2])<<4 | hexValue(hex[i*2+1])
	}

	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToSessionConfig converts Config to session.Config.
func (c Config) ToSessionConfig() session.Config {
	return session.Config{
		Device:    c.Device,
		Interval:  time.Duration(c.IntervalMs) * time.Millisecond,
		Grayscale: c.Grayscale,
		Theme: pipeline.HistogramTheme{
			Background: ParseColor(c.Theme.BackgroundColor),
			Ink:        ParseColor(c.Theme.InkColor),
		},
	}
}
