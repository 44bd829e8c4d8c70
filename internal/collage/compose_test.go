package collage

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/youruser/collageapp/internal/layout"
)

func TestRoundCorners_ZeroRadiusIsNoOp(t *testing.T) {
	img := imaging.New(50, 50, color.NRGBA{R: 0xc8, A: 0xff})
	out := RoundCorners(img, 0)
	if out != img {
		t.Fatal("radius 0 should return the input image unchanged")
	}
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Fatal("radius 0 must be pixel-identical")
	}
}

func TestRoundCorners_ClearsCornerPixels(t *testing.T) {
	img := imaging.New(60, 40, color.NRGBA{R: 0xc8, A: 0xff})
	out := RoundCorners(img, 10)

	for _, p := range []image.Point{{0, 0}, {59, 0}, {0, 39}, {59, 39}} {
		if a := out.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Fatalf("corner pixel (%d,%d) alpha = %d, want 0", p.X, p.Y, a)
		}
	}
	// Edge midpoints and the interior stay opaque.
	for _, p := range []image.Point{{30, 0}, {0, 20}, {30, 20}, {10, 10}} {
		if a := out.NRGBAAt(p.X, p.Y).A; a != 0xff {
			t.Fatalf("pixel (%d,%d) alpha = %d, want 255", p.X, p.Y, a)
		}
	}
}

func TestRoundCorners_RadiusClampedToHalfShortSide(t *testing.T) {
	img := imaging.New(100, 20, color.NRGBA{G: 0xff, A: 0xff})
	out := RoundCorners(img, 500)
	if a := out.NRGBAAt(50, 10).A; a != 0xff {
		t.Fatalf("center alpha = %d, want 255", a)
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha = %d, want 0", a)
	}
}

func TestCompose_PlacesTilesAndBackground(t *testing.T) {
	red := imaging.New(100, 100, color.NRGBA{R: 0xff, A: 0xff})
	blue := imaging.New(100, 100, color.NRGBA{B: 0xff, A: 0xff})
	plan, err := layout.Grid(2, 2, 219, 120, 5)
	if err != nil {
		t.Fatal(err)
	}
	bg := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
	out := Compose([]image.Image{red, blue}, plan, bg, 0)

	if got := out.NRGBAAt(50, 50); got.R != 0xff || got.B != 0 {
		t.Fatalf("first cell center = %+v, want red", got)
	}
	if got := out.NRGBAAt(160, 50); got.B != 0xff || got.R != 0 {
		t.Fatalf("second cell center = %+v, want blue", got)
	}
	// The margin column between the cells keeps the background color.
	if got := out.NRGBAAt(109, 50); got != bg {
		t.Fatalf("margin pixel = %+v, want background %+v", got, bg)
	}
	if got := out.NRGBAAt(0, 0); got != bg {
		t.Fatalf("edge pixel = %+v, want background %+v", got, bg)
	}
}

func TestCompose_RoundedTilesShowBackground(t *testing.T) {
	tile := imaging.New(100, 100, color.NRGBA{R: 0xff, A: 0xff})
	plan, err := layout.Grid(1, 1, 100, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	bg := color.NRGBA{G: 0xff, A: 0xff}
	out := Compose([]image.Image{tile}, plan, bg, 20)

	if got := out.NRGBAAt(0, 0); got.G != 0xff {
		t.Fatalf("corner = %+v, want background green", got)
	}
	if got := out.NRGBAAt(50, 50); got.R != 0xff {
		t.Fatalf("center = %+v, want tile red", got)
	}
}

func TestCompose_ExactPlanResizesToCell(t *testing.T) {
	src := imaging.New(300, 150, color.NRGBA{R: 0xff, A: 0xff})
	plan := &layout.Plan{
		Cells:  []layout.Cell{{Index: 0, X: 5, Y: 5, W: 60, H: 30}},
		Width:  70,
		Height: 40,
		Exact:  true,
	}
	out := Compose([]image.Image{src}, plan, color.NRGBA{A: 0xff}, 0)
	if got := out.NRGBAAt(64, 34); got.R != 0xff {
		t.Fatalf("tile bottom-right corner = %+v, want red", got)
	}
	if got := out.NRGBAAt(66, 36); got.R != 0 {
		t.Fatalf("outside tile = %+v, want background", got)
	}
}

func TestQRTile(t *testing.T) {
	img, err := QRTile("https://example.com/album", 120)
	if err != nil {
		t.Fatal(err)
	}
	if sz := img.Bounds().Size(); sz.X != 120 || sz.Y != 120 {
		t.Fatalf("qr tile is %dx%d, want 120x120", sz.X, sz.Y)
	}
}
