// Package config holds the read-once settings for a collage run.
package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/youruser/collageapp/internal/faults"
)

// Mode selects how placement rectangles are produced.
type Mode string

const (
	ModeGrid   Mode = "grid"
	ModeCustom Mode = "custom"
)

// Config is assembled once at startup and read-only afterwards.
type Config struct {
	InputDir   string
	OutputPath string
	Mode       Mode
	LayoutFile string

	Columns      int // grid mode; 0 means nearly square
	CanvasWidth  int
	CanvasHeight int
	Margin       int
	CornerRadius int
	Background   color.NRGBA

	QRText      string
	JPEGQuality int
}

// Default returns the built-in settings, before the defaults file and flags
// are applied.
func Default() Config {
	return Config{
		Mode:         ModeGrid,
		CanvasWidth:  1600,
		CanvasHeight: 1600,
		Background:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x00},
		JPEGQuality:  90,
	}
}

// fileConfig mirrors the YAML defaults file. Pointers distinguish an absent
// key from a zero value.
type fileConfig struct {
	Layout     *string `yaml:"layout"`
	Columns    *int    `yaml:"columns"`
	Width      *int    `yaml:"width"`
	Height     *int    `yaml:"height"`
	Margin     *int    `yaml:"margin"`
	Radius     *int    `yaml:"radius"`
	Background *string `yaml:"background"`
	Quality    *int    `yaml:"quality"`
}

// ApplyFile overlays the settings found in a YAML defaults file. Keys the
// file omits are left untouched; flags set on the command line take
// precedence over the file and are applied afterwards by the caller.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return faults.Config(fmt.Errorf("reading defaults file: %w", err))
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return faults.Config(fmt.Errorf("parsing %s: %w", path, err))
	}
	if fc.Layout != nil {
		c.Mode = Mode(*fc.Layout)
	}
	if fc.Columns != nil {
		c.Columns = *fc.Columns
	}
	if fc.Width != nil {
		c.CanvasWidth = *fc.Width
	}
	if fc.Height != nil {
		c.CanvasHeight = *fc.Height
	}
	if fc.Margin != nil {
		c.Margin = *fc.Margin
	}
	if fc.Radius != nil {
		c.CornerRadius = *fc.Radius
	}
	if fc.Quality != nil {
		c.JPEGQuality = *fc.Quality
	}
	if fc.Background != nil {
		bg, err := ParseHexColor(*fc.Background)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		c.Background = bg
	}
	return nil
}

// Validate checks the assembled configuration before the pipeline starts.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return faults.Configf("input directory is required (-in)")
	}
	if c.OutputPath == "" {
		return faults.Configf("output path is required (-out)")
	}
	switch c.Mode {
	case ModeGrid, ModeCustom:
	default:
		return faults.Configf("unknown layout mode %q (want grid or custom)", c.Mode)
	}
	if c.Mode == ModeCustom && c.LayoutFile == "" {
		return faults.Configf("-layout custom requires -layout-file")
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return faults.Configf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.Columns < 0 {
		return faults.Configf("columns must not be negative, got %d", c.Columns)
	}
	if c.Margin < 0 {
		return faults.Configf("margin must not be negative, got %d", c.Margin)
	}
	if c.CornerRadius < 0 {
		return faults.Configf("corner radius must not be negative, got %d", c.CornerRadius)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return faults.Configf("jpeg quality must be in 1..100, got %d", c.JPEGQuality)
	}
	return nil
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA (leading # optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	t := strings.TrimPrefix(s, "#")
	b, err := hex.DecodeString(t)
	if err != nil || (len(b) != 3 && len(b) != 4) {
		return color.NRGBA{}, faults.Configf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
