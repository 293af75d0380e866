package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Device != 0 {
		t.Errorf("default device = %d, want 0", cfg.Device)
	}
	if cfg.IntervalMs != 33 {
		t.Errorf("default interval = %d ms, want 33", cfg.IntervalMs)
	}
	if cfg.Grayscale {
		t.Error("grayscale must default to off")
	}
	if cfg.Theme.BackgroundColor != "#000000" || cfg.Theme.InkColor != "#ffffff" {
		t.Errorf("unexpected default theme: %+v", cfg.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camview.yaml")
	yaml := `
device: 2
interval_ms: 66
grayscale: true
overlay: logo.png
theme:
  ink_color: "#ff0000"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Device != 2 || cfg.IntervalMs != 66 || !cfg.Grayscale {
		t.Errorf("values not loaded: %+v", cfg)
	}
	if cfg.OverlayPath != "logo.png" {
		t.Errorf("overlay = %q, want logo.png", cfg.OverlayPath)
	}
	if cfg.Theme.InkColor != "#ff0000" {
		t.Errorf("ink = %q, want #ff0000", cfg.Theme.InkColor)
	}
	// Unset keys keep their defaults.
	if cfg.Theme.BackgroundColor != "#000000" {
		t.Errorf("background lost its default: %q", cfg.Theme.BackgroundColor)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/camview.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.Color
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"00ff00", color.RGBA{G: 255, A: 255}},
		{"#1A2b3C", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}},
		{"", color.Black},
		{"#fff", color.Black},
	}

	for _, tt := range tests {
		if got := ParseColor(tt.hex); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestToSessionConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Device = 1
	cfg.IntervalMs = 50
	cfg.Grayscale = true

	sc := cfg.ToSessionConfig()
	if sc.Device != 1 {
		t.Errorf("device = %d, want 1", sc.Device)
	}
	if sc.Interval != 50*time.Millisecond {
		t.Errorf("interval = %s, want 50ms", sc.Interval)
	}
	if !sc.Grayscale {
		t.Error("grayscale flag lost in conversion")
	}
	if sc.Theme.Background == nil || sc.Theme.Ink == nil {
		t.Error("theme colors not populated")
	}
}
