// Package collage composites planned tiles onto a canvas and drives the
// load -> plan -> compose -> write pipeline.
package collage

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/youruser/collageapp/internal/layout"
)

// Compose pastes one tile per plan cell onto a fresh canvas. Grid and
// rectangle-list cells are filled edge to edge (scale to cover, centered
// crop); span-rule cells already carry the exact size derived from the
// image, so those are resized directly. Tile alpha is honored, which is
// what makes rounded corners show the background through.
func Compose(imgs []image.Image, plan *layout.Plan, bg color.NRGBA, cornerRadius int) *image.NRGBA {
	canvas := imaging.New(plan.Width, plan.Height, bg)
	for i, img := range imgs {
		cell := plan.Cells[i]
		var tile *image.NRGBA
		if plan.Exact {
			tile = imaging.Resize(img, cell.W, cell.H, imaging.Lanczos)
		} else {
			tile = imaging.Fill(img, cell.W, cell.H, imaging.Center, imaging.Lanczos)
		}
		if cornerRadius > 0 {
			tile = RoundCorners(tile, cornerRadius)
		}
		canvas = imaging.Overlay(canvas, tile, image.Pt(cell.X, cell.Y), 1.0)
	}
	return canvas
}
