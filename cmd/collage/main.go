package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/youruser/collageapp/internal/collage"
	"github.com/youruser/collageapp/internal/config"
	"github.com/youruser/collageapp/internal/faults"
)

// Exit codes by failure class; 0 on success, 1 for anything unclassified.
const (
	exitConfig = 2
	exitInput  = 3
	exitIO     = 4
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "collage:", err)
		os.Exit(exitCode(err))
	}
}

func run(args []string) error {
	def := config.Default()

	fs := flag.NewFlagSet("collage", flag.ContinueOnError)
	in := fs.String("in", "", "input directory containing the source images")
	out := fs.String("out", "collage.png", "output image path (format chosen by extension)")
	mode := fs.String("layout", string(def.Mode), "layout mode: grid or custom")
	layoutFile := fs.String("layout-file", "", "JSON layout file (required for -layout custom)")
	columns := fs.Int("columns", def.Columns, "grid columns (0 = nearly square)")
	width := fs.Int("width", def.CanvasWidth, "canvas width in pixels")
	height := fs.Int("height", def.CanvasHeight, "canvas height in pixels")
	margin := fs.Int("margin", def.Margin, "pixel gap between tiles and along the canvas edges")
	radius := fs.Int("radius", def.CornerRadius, "corner radius applied to each tile")
	background := fs.String("background", "#ffffff00", "canvas background (#RRGGBB or #RRGGBBAA)")
	qr := fs.String("qr", "", "append a QR code tile encoding this text")
	quality := fs.Int("quality", def.JPEGQuality, "JPEG quality (1-100)")
	configFile := fs.String("config", "", "YAML file with default settings")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return faults.Config(err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := def
	if *configFile != "" {
		if err := cfg.ApplyFile(*configFile); err != nil {
			return err
		}
		log.Debug("applied defaults file", "path", *configFile)
	}

	// Flags set on the command line win over the defaults file.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.InputDir = *in
	cfg.OutputPath = *out
	cfg.LayoutFile = *layoutFile
	cfg.QRText = *qr
	if set["layout"] {
		cfg.Mode = config.Mode(*mode)
	}
	if set["columns"] {
		cfg.Columns = *columns
	}
	if set["width"] {
		cfg.CanvasWidth = *width
	}
	if set["height"] {
		cfg.CanvasHeight = *height
	}
	if set["margin"] {
		cfg.Margin = *margin
	}
	if set["radius"] {
		cfg.CornerRadius = *radius
	}
	if set["quality"] {
		cfg.JPEGQuality = *quality
	}
	if set["background"] {
		bg, err := config.ParseHexColor(*background)
		if err != nil {
			return err
		}
		cfg.Background = bg
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return collage.Run(cfg, log)
}

func exitCode(err error) int {
	var ce *faults.ConfigError
	var ie *faults.InputError
	var xe *faults.IOError
	switch {
	case errors.As(err, &ce):
		return exitConfig
	case errors.As(err, &ie):
		return exitInput
	case errors.As(err, &xe):
		return exitIO
	}
	return 1
}
