package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/pview/internal/draw"
	"github.com/alexisbeaulieu97/pview/internal/palette"
)

// unitColumns is how many terminal columns one drawing unit spans, so that a
// unit square looks roughly square on screen.
const unitColumns = 2

// cell is one terminal column. A ch of 0 marks the trailing column of the wide
// rune to its left.
type cell struct {
	bg, fg palette.Color
	ch     rune
}

// canvas is a draw.Surface backed by a grid of terminal cells. Its
// coordinates are drawing units: one row tall, unitColumns columns wide.
// Text ignores the requested size, is one row tall and is measured in
// terminal columns, so wide runes take two.
type canvas struct {
	width, height int
	cells         [][]cell
}

var _ draw.Surface = (*canvas)(nil)

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		c.cells[y] = make([]cell, width*unitColumns)
		for x := range c.cells[y] {
			c.cells[y][x].ch = ' '
		}
	}
	return c
}

func (c *canvas) Clear(bg palette.Color) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{bg: bg, fg: bg, ch: ' '}
		}
	}
}

func (c *canvas) DrawSquare(x, y, size int, col palette.Color) {
	start := max(x*unitColumns, 0)
	for row := y; row < y+size; row++ {
		if row < 0 || row >= c.height {
			continue
		}
		cells := c.cells[row]
		end := min((x+size)*unitColumns, len(cells))
		if start >= end {
			continue
		}
		for column := start; column < end; column++ {
			cells[column] = cell{bg: col, fg: col, ch: ' '}
		}
		mend(cells, start, end)
	}
}

func (c *canvas) MeasureText(text string, _ int) (int, int) {
	columns := runewidth.StringWidth(text)
	return (columns + unitColumns - 1) / unitColumns, 1
}

// DrawText writes text from unit x onwards and stops at the first rune that
// would not fit in the row.
func (c *canvas) DrawText(text string, x, y, _ int, fg palette.Color) {
	if y < 0 || y >= c.height {
		return
	}
	cells := c.cells[y]
	column := x * unitColumns
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if column+w > len(cells) {
			return
		}
		if column >= 0 {
			for i := column; i < column+w; i++ {
				cells[i].fg = fg
				cells[i].ch = 0
			}
			cells[column].ch = r
			mend(cells, column, column+w)
		}
		column += w
	}
}

// mend blanks the halves of wide runes cut by a write to cells[start:end].
func mend(cells []cell, start, end int) {
	if start > 0 && runewidth.RuneWidth(cells[start-1].ch) > 1 {
		cells[start-1].ch = ' '
	}
	if end < len(cells) && cells[end].ch == 0 {
		cells[end].ch = ' '
	}
}

// Render converts the cells into styled lines, one style per run of equal
// colors.
func (c *canvas) Render() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var b strings.Builder
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].bg == row[start].bg && row[i].fg == row[start].fg {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, cl := range row[start:i] {
				if cl.ch != 0 {
					run = append(run, cl.ch)
				}
			}
			b.WriteString(cellStyle(row[start].bg, row[start].fg).Render(string(run)))
			start = i
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Text returns the characters without styling.
func (c *canvas) Text() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		run := make([]rune, 0, len(row))
		for _, cl := range row {
			if cl.ch != 0 {
				run = append(run, cl.ch)
			}
		}
		lines = append(lines, string(run))
	}
	return strings.Join(lines, "\n")
}
