// Package grid packs N equally sized square cells into a viewport.
//
// Layout is the pure two-candidate search: one candidate fixes the row count
// first, the other the column count, and the one yielding the larger cell wins.
// Fit adds per-cell gutter spacing and the overflow guard used by presenters.
package grid

import "math"

// Result is the outcome of a layout computation.
type Result struct {
	Rows     int
	Cols     int
	CellSize int

	// Fallback is set when Fit discarded the search result for the direct computation.
	Fallback bool
}

// Capacity returns the number of cells the grid holds.
func (r Result) Capacity() int {
	return r.Rows * r.Cols
}

// Footprint returns the width and height covered by the grid when cells are
// separated by gutter pixels. No trailing gutter is counted.
func (r Result) Footprint(gutter int) (width, height int) {
	return r.Cols*(r.CellSize+gutter) - gutter, r.Rows*(r.CellSize+gutter) - gutter
}

// Cell returns the row and column of item i in row-major order.
func (r Result) Cell(i int) (row, col int) {
	if r.Cols <= 0 {
		return 0, 0
	}
	return i / r.Cols, i % r.Cols
}

var empty = Result{Rows: 1, Cols: 1, CellSize: 0}

// Layout computes rows, columns and cell size for n items in a width×height
// viewport. Width and height must be positive.
func Layout(n int, width, height float64) Result {
	if width <= 0 || height <= 0 {
		panic("grid: viewport dimensions must be positive")
	}
	if n <= 0 {
		return empty
	}

	rows, cols, size := search(n, width, height)
	return Result{Rows: rows, Cols: cols, CellSize: int(math.Floor(size))}
}

// Fit lays out n items in a width×height area with gutter pixels between
// adjacent cells. The search runs on the area grown by one gutter in each
// direction so that every cell carries its trailing gutter; the last one falls
// outside the area. When the result still overflows, Fit falls back to
// cols = ceil(sqrt(n*aspect)), rows = ceil(n/cols).
func Fit(n, width, height, gutter int) Result {
	if n <= 0 || width <= 0 || height <= 0 {
		return empty
	}
	if gutter < 0 {
		gutter = 0
	}

	rows, cols, size := search(n, float64(width+gutter), float64(height+gutter))
	res := Result{Rows: rows, Cols: cols, CellSize: int(math.Floor(size)) - gutter}

	w, h := res.Footprint(gutter)
	if res.CellSize >= 0 && w <= width && h <= height {
		return res
	}
	return fallback(n, width, height, gutter)
}

func fallback(n, width, height, gutter int) Result {
	aspect := float64(width) / float64(height)
	cols := int(math.Ceil(math.Sqrt(float64(n) * aspect)))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(float64(n) / float64(cols)))

	size := min(width/cols, height/rows) - gutter
	if size < 0 {
		size = 0
	}
	return Result{Rows: rows, Cols: cols, CellSize: size, Fallback: true}
}

func search(n int, width, height float64) (rows, cols int, size float64) {
	ratio := width / height
	idealCols := math.Sqrt(float64(n) * ratio)
	idealRows := float64(n) / idealCols

	rows1, cols1 := rowsFirst(n, ratio, idealRows)
	size1 := height / float64(rows1)

	cols2, rows2 := colsFirst(n, ratio, idealCols)
	size2 := width / float64(cols2)

	if size1 < size2 {
		return rows2, cols2, size2
	}
	return rows1, cols1, size1
}

// rowsFirst grows the row count until the grid is at least as tall as the
// viewport ratio demands.
func rowsFirst(n int, ratio, idealRows float64) (rows, cols int) {
	rows = max(int(math.Ceil(idealRows)), 1)
	cols = ceilDiv(n, rows)
	for float64(rows)*ratio < float64(cols) {
		if cols == 1 {
			// Only the row count can still change; jump to the answer.
			rows = max(rows+1, int(math.Ceil(1/ratio))-1)
			for float64(rows)*ratio < 1 {
				rows++
			}
			return rows, 1
		}
		rows++
		cols = ceilDiv(n, rows)
	}
	return rows, cols
}

// colsFirst is the column-first mirror of rowsFirst.
func colsFirst(n int, ratio, idealCols float64) (cols, rows int) {
	cols = max(int(math.Ceil(idealCols)), 1)
	rows = ceilDiv(n, cols)
	for float64(cols) < float64(rows)*ratio {
		if rows == 1 {
			cols = max(cols+1, int(math.Ceil(ratio))-1)
			for float64(cols) < ratio {
				cols++
			}
			return cols, 1
		}
		cols++
		rows = ceilDiv(n, cols)
	}
	return cols, rows
}

func ceilDiv(a, b int) int {
	return int(math.Ceil(float64(a) / float64(b)))
}
