package collage

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/youruser/collageapp/internal/config"
	"github.com/youruser/collageapp/internal/faults"
	"github.com/youruser/collageapp/internal/imgio"
	"github.com/youruser/collageapp/internal/layout"
)

// Run executes one full collage pipeline: load the input directory, plan
// the layout, composite, write the output. Errors abort the run before
// anything is written.
func Run(cfg config.Config, log *slog.Logger) error {
	paths, err := imgio.ListImages(cfg.InputDir)
	if err != nil {
		return err
	}
	imgs, err := imgio.LoadImages(paths)
	if err != nil {
		return err
	}
	log.Info("loaded images", "count", len(imgs), "dir", cfg.InputDir)

	if cfg.QRText != "" {
		tile, err := QRTile(cfg.QRText, qrTileSize)
		if err != nil {
			return err
		}
		imgs = append(imgs, tile)
		log.Debug("appended qr tile", "text", cfg.QRText)
	}

	var plan *layout.Plan
	switch cfg.Mode {
	case config.ModeGrid:
		plan, err = layout.Grid(len(imgs), cfg.Columns, cfg.CanvasWidth, cfg.CanvasHeight, cfg.Margin)
	case config.ModeCustom:
		sizes := make([]image.Point, len(imgs))
		for i, im := range imgs {
			sizes[i] = im.Bounds().Size()
		}
		plan, err = layout.Custom(cfg.LayoutFile, sizes, cfg.CanvasWidth, cfg.CanvasHeight, cfg.Margin)
	default:
		err = faults.Configf("unknown layout mode %q", cfg.Mode)
	}
	if err != nil {
		return err
	}
	log.Info("planned layout",
		"mode", string(cfg.Mode),
		"cells", len(plan.Cells),
		"canvas", fmt.Sprintf("%dx%d", plan.Width, plan.Height))

	out := Compose(imgs, plan, cfg.Background, cfg.CornerRadius)
	if err := imgio.Save(out, cfg.OutputPath, cfg.JPEGQuality); err != nil {
		return err
	}
	log.Info("wrote collage", "path", cfg.OutputPath)
	return nil
}
