// Package layout computes the placement rectangle for every tile of a
// collage. Grid mode divides a fixed canvas; custom mode reads a JSON
// layout file.
package layout

import (
	"math"

	"github.com/youruser/collageapp/internal/faults"
)

// Cell is one placement rectangle on the collage canvas.
type Cell struct {
	Index int
	X, Y  int
	W, H  int
}

// Plan is the complete placement for one run: exactly one cell per tile,
// pairwise non-overlapping, all inside the canvas.
type Plan struct {
	Cells  []Cell
	Width  int
	Height int

	// Exact reports that cell sizes were derived from the source images
	// (span-rule layouts), so tiles are resized to the cell exactly
	// instead of fill-cropped.
	Exact bool
}

// Grid divides a width x height canvas into equal cells for n tiles,
// row-major. columns <= 0 picks the smallest nearly-square grid. The margin
// separates adjacent cells and also pads the canvas edges; a trailing
// partial row leaves its tail cells unfilled.
func Grid(n, columns, width, height, margin int) (*Plan, error) {
	if n <= 0 {
		return nil, faults.Inputf("no tiles to place")
	}
	cols := columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	if cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols

	cellW := (width - (cols+1)*margin) / cols
	cellH := (height - (rows+1)*margin) / rows
	if cellW < 1 || cellH < 1 {
		return nil, faults.Configf("margin %d leaves no room for a %dx%d grid on a %dx%d canvas",
			margin, cols, rows, width, height)
	}

	cells := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		cells = append(cells, Cell{
			Index: i,
			X:     margin + col*(cellW+margin),
			Y:     margin + row*(cellH+margin),
			W:     cellW,
			H:     cellH,
		})
	}
	return &Plan{Cells: cells, Width: width, Height: height}, nil
}
