package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/youruser/collageapp/internal/faults"
)

func validConfig() Config {
	c := Default()
	c.InputDir = "photos"
	c.OutputPath = "out/collage.png"
	return c
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#ffffff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"#ffffff00", color.NRGBA{0xff, 0xff, 0xff, 0x00}, true},
		{"112233", color.NRGBA{0x11, 0x22, 0x33, 0xff}, true},
		{"#1122", color.NRGBA{}, false},
		{"#gggggg", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("%q: unexpected error state: %v", tc.in, err)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collage.yaml")
	content := "layout: custom\nmargin: 12\nradius: 8\nbackground: \"#000000\"\nquality: 75\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Default()
	if err := c.ApplyFile(path); err != nil {
		t.Fatal(err)
	}
	if c.Mode != ModeCustom || c.Margin != 12 || c.CornerRadius != 8 || c.JPEGQuality != 75 {
		t.Fatalf("unexpected config after overlay: %+v", c)
	}
	if c.Background != (color.NRGBA{A: 0xff}) {
		t.Fatalf("background = %+v, want opaque black", c.Background)
	}
	// Keys the file omits keep their defaults.
	if c.CanvasWidth != Default().CanvasWidth {
		t.Fatalf("width changed to %d without a file key", c.CanvasWidth)
	}
}

func TestApplyFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collage.yaml")
	if err := os.WriteFile(path, []byte(": not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	c := Default()
	err := c.ApplyFile(path)
	var ce *faults.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"missing input", func(c *Config) { c.InputDir = "" }, false},
		{"missing output", func(c *Config) { c.OutputPath = "" }, false},
		{"bad mode", func(c *Config) { c.Mode = "spiral" }, false},
		{"custom without layout file", func(c *Config) { c.Mode = ModeCustom }, false},
		{"custom with layout file", func(c *Config) { c.Mode = ModeCustom; c.LayoutFile = "l.json" }, true},
		{"zero canvas", func(c *Config) { c.CanvasWidth = 0 }, false},
		{"negative margin", func(c *Config) { c.Margin = -1 }, false},
		{"negative radius", func(c *Config) { c.CornerRadius = -5 }, false},
		{"negative columns", func(c *Config) { c.Columns = -2 }, false},
		{"quality out of range", func(c *Config) { c.JPEGQuality = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok {
				var ce *faults.ConfigError
				if !errors.As(err, &ce) {
					t.Fatalf("expected ConfigError, got %v", err)
				}
			}
		})
	}
}
