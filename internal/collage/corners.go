package collage

import (
	"image"
	"image/draw"
)

// RoundCorners clears the pixels of img outside a rounded rectangle with
// the given corner radius. A radius <= 0 returns img unchanged; a radius
// larger than half the shorter side is clamped to it.
func RoundCorners(img *image.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := radius
	if limit := min(w, h) / 2; r > limit {
		r = limit
	}
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(out, out.Bounds(), img, b.Min, roundedMask(w, h, r), image.Point{}, draw.Src)
	return out
}

// roundedMask is fully opaque except for the four r x r corner squares,
// where pixels whose center falls outside the corner circle go transparent.
func roundedMask(w, h, r int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	rr := float64(r) * float64(r)
	corners := []struct {
		cx, cy float64
		x0, y0 int
	}{
		{float64(r), float64(r), 0, 0},
		{float64(w - r), float64(r), w - r, 0},
		{float64(r), float64(h - r), 0, h - r},
		{float64(w - r), float64(h - r), w - r, h - r},
	}
	for _, c := range corners {
		for y := c.y0; y < c.y0+r; y++ {
			for x := c.x0; x < c.x0+r; x++ {
				dx := float64(x) + 0.5 - c.cx
				dy := float64(y) + 0.5 - c.cy
				if dx*dx+dy*dy > rr {
					mask.Pix[y*mask.Stride+x] = 0
				}
			}
		}
	}
	return mask
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
