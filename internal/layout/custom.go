package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/youruser/collageapp/internal/faults"
)

// Rect is one entry of a rectangle-list layout file.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// spanRule is the alternative layout schema: a rows x columns arrangement
// where each image names its row, column and column span, and the canvas
// size is derived from the source image dimensions.
type spanRule struct {
	Layout struct {
		Rows    int         `json:"rows"`
		Columns int         `json:"columns"`
		Images  []spanImage `json:"images"`
	} `json:"layout"`
}

type spanImage struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Span int `json:"span"`
}

// Custom reads a JSON layout file and produces a plan for len(sizes) tiles.
// A top-level array is a rectangle list placed on the configured canvas; a
// top-level object is a span rule, which derives its own canvas size from
// the source image dimensions in sizes.
func Custom(path string, sizes []image.Point, width, height, margin int) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.Config(fmt.Errorf("reading layout file: %w", err))
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		return rectList(path, data, len(sizes), width, height)
	case len(trimmed) > 0 && trimmed[0] == '{':
		return spanGrid(path, data, sizes, margin)
	}
	return nil, faults.Configf("layout file %s: expected a JSON array or object", path)
}

func rectList(path string, data []byte, n, width, height int) (*Plan, error) {
	var rects []Rect
	if err := json.Unmarshal(data, &rects); err != nil {
		return nil, faults.Config(fmt.Errorf("parsing %s: %w", path, err))
	}
	if len(rects) != n {
		return nil, faults.Configf("%s declares %d rectangles for %d images", path, len(rects), n)
	}
	cells := make([]Cell, 0, n)
	for i, r := range rects {
		if r.Width <= 0 || r.Height <= 0 {
			return nil, faults.Configf("%s: rectangle %d has non-positive size %dx%d", path, i, r.Width, r.Height)
		}
		if r.X < 0 || r.Y < 0 || r.X+r.Width > width || r.Y+r.Height > height {
			return nil, faults.Configf("%s: rectangle %d (%d,%d %dx%d) lies outside the %dx%d canvas",
				path, i, r.X, r.Y, r.Width, r.Height, width, height)
		}
		cells = append(cells, Cell{Index: i, X: r.X, Y: r.Y, W: r.Width, H: r.Height})
	}
	return &Plan{Cells: cells, Width: width, Height: height}, nil
}

// spanGrid sizes columns and rows from the images themselves: each column is
// as wide as the widest (span-scaled) image in it, each image is then scaled
// to the full width of its spanned columns, and the canvas wraps the result
// plus margins.
func spanGrid(path string, data []byte, sizes []image.Point, margin int) (*Plan, error) {
	var rule spanRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return nil, faults.Config(fmt.Errorf("parsing %s: %w", path, err))
	}
	rows, cols := rule.Layout.Rows, rule.Layout.Columns
	if rows < 1 || cols < 1 {
		return nil, faults.Configf("%s: layout needs at least 1 row and 1 column, got %dx%d", path, rows, cols)
	}
	imgs := rule.Layout.Images
	if len(imgs) != len(sizes) {
		return nil, faults.Configf("%s declares %d placements for %d images", path, len(imgs), len(sizes))
	}
	for i, im := range imgs {
		span := im.Span
		if span < 1 {
			span = 1
		}
		if im.Row < 1 || im.Row > rows {
			return nil, faults.Configf("%s: placement %d row %d out of range 1..%d", path, i, im.Row, rows)
		}
		if im.Col < 1 || im.Col+span-1 > cols {
			return nil, faults.Configf("%s: placement %d columns %d..%d out of range 1..%d",
				path, i, im.Col, im.Col+span-1, cols)
		}
	}

	colW := make([]float64, cols)
	rowH := make([]float64, rows)
	m := float64(margin)

	// First pass: column widths from span-scaled image widths, row heights
	// from the raw image heights.
	for i, im := range imgs {
		row, col, span := im.Row-1, im.Col-1, im.Span
		if span < 1 {
			span = 1
		}
		w, h := float64(sizes[i].X), float64(sizes[i].Y)
		scaledW := (w + float64(span-1)*m) / float64(span)
		for c := col; c < col+span; c++ {
			if scaledW > colW[c] {
				colW[c] = scaledW
			}
		}
		if h > rowH[row] {
			rowH[row] = h
		}
	}

	// Second pass: scale every image to the full width of its spanned
	// columns, growing its row if the scaled height demands it.
	cells := make([]Cell, len(imgs))
	for i, im := range imgs {
		row, col, span := im.Row-1, im.Col-1, im.Span
		if span < 1 {
			span = 1
		}
		w, h := float64(sizes[i].X), float64(sizes[i].Y)
		total := float64(span-1) * m
		for c := col; c < col+span; c++ {
			total += colW[c]
		}
		scale := total / w
		newW, newH := int(math.Round(w*scale)), int(math.Round(h*scale))
		cells[i] = Cell{Index: i, W: newW, H: newH}
		if float64(newH) > rowH[row] {
			rowH[row] = float64(newH)
		}
	}

	colX := make([]int, cols)
	x := m
	for c := 0; c < cols; c++ {
		colX[c] = int(x)
		x += colW[c] + m
	}
	rowY := make([]int, rows)
	y := m
	for r := 0; r < rows; r++ {
		rowY[r] = int(y)
		y += rowH[r] + m
	}
	for i, im := range imgs {
		cells[i].X = colX[im.Col-1]
		cells[i].Y = rowY[im.Row-1]
	}

	var sumW, sumH float64
	for _, w := range colW {
		sumW += w
	}
	for _, h := range rowH {
		sumH += h
	}
	return &Plan{
		Cells:  cells,
		Width:  int(sumW + float64(cols+1)*m),
		Height: int(sumH + float64(rows+1)*m),
		Exact:  true,
	}, nil
}
