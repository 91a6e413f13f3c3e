package session

import (
	"fmt"

	"github.com/alexisbeaulieu97/pview/internal/contrast"
	"github.com/alexisbeaulieu97/pview/internal/grid"
	"github.com/alexisbeaulieu97/pview/internal/palette"
)

// Viewport is the drawable area in presenter units (pixels or terminal cells).
type Viewport struct {
	Width  int
	Height int
}

// Spacing is the fixed geometry a presenter wraps around the swatch grid.
type Spacing struct {
	// Margin is kept free on the left, right and top edges.
	Margin int
	// BottomMargin is reserved at the bottom for the footer.
	BottomMargin int
	// Gutter separates adjacent swatches.
	Gutter int
	// FooterOffset is the footer's distance from the bottom edge.
	FooterOffset int
	LabelSize    int
	FooterSize   int
}

// Swatch is one color square positioned in the viewport.
type Swatch struct {
	X, Y, Size int
	Color      palette.Color
	Label      string
	LabelColor palette.Color
}

// Frame is everything a presenter needs to draw one frame.
type Frame struct {
	Viewport   Viewport
	Spacing    Spacing
	Layout     grid.Result
	Swatches   []Swatch
	Theme      Theme
	Background palette.Color
	Text       palette.Color
	Count      string
	Name       string
	FooterY    int
}

// Frame derives the frame for the current state and viewport. It does not
// change the session.
func (s *Session) Frame(vp Viewport, sp Spacing) Frame {
	return BuildFrame(s.Palette(), s.Entry().Name, s.theme, vp, sp)
}

// BuildFrame lays out p in vp. The grid fills the area left after removing the
// margins; each swatch is labelled with its hex value in a contrasting color.
func BuildFrame(p palette.Palette, name string, theme Theme, vp Viewport, sp Spacing) Frame {
	bg := theme.Background()
	f := Frame{
		Viewport:   vp,
		Spacing:    sp,
		Theme:      theme,
		Background: bg,
		Text:       contrast.ForegroundFor(bg),
		Count:      fmt.Sprintf("Total Colors: %d", p.Len()),
		Name:       name,
		FooterY:    vp.Height - sp.FooterOffset,
	}

	width := vp.Width - 2*sp.Margin
	height := vp.Height - sp.BottomMargin - sp.Margin
	f.Layout = grid.Fit(p.Len(), width, height, sp.Gutter)
	if f.Layout.CellSize <= 0 {
		return f
	}

	step := f.Layout.CellSize + sp.Gutter
	f.Swatches = make([]Swatch, p.Len())
	for i := range f.Swatches {
		row, col := f.Layout.Cell(i)
		c := p.At(i)
		f.Swatches[i] = Swatch{
			X:          col*step + sp.Margin,
			Y:          row*step + sp.Margin,
			Size:       f.Layout.CellSize,
			Color:      c,
			Label:      c.Hex(),
			LabelColor: contrast.ForegroundFor(c),
		}
	}
	return f
}
