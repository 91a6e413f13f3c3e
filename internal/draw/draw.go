// Package draw paints a session frame onto a drawing surface. It has no
// knowledge of the concrete backend; the image renderer and the terminal UI
// both implement Surface.
package draw

import (
	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/internal/session"
)

// Surface is the minimal drawing backend a presenter needs. Coordinates and
// sizes are in the surface's own units.
type Surface interface {
	Clear(c palette.Color)
	DrawSquare(x, y, size int, c palette.Color)
	MeasureText(text string, size int) (width, height int)
	DrawText(text string, x, y, size int, c palette.Color)
}

// Frame draws f onto s: background, swatches with centred labels, then the
// footer. A label is left out when it would not fit inside its swatch.
func Frame(s Surface, f session.Frame) {
	s.Clear(f.Background)

	for _, sw := range f.Swatches {
		s.DrawSquare(sw.X, sw.Y, sw.Size, sw.Color)
		Label(s, sw, f.Spacing.LabelSize)
	}

	Footer(s, f)
}

// Label centres the swatch's hex label. It reports whether the label was drawn.
func Label(s Surface, sw session.Swatch, size int) bool {
	if sw.Label == "" {
		return false
	}
	w, h := s.MeasureText(sw.Label, size)
	if w > sw.Size || h > sw.Size {
		return false
	}
	x := sw.X + (sw.Size-w)/2
	y := sw.Y + (sw.Size-h)/2
	s.DrawText(sw.Label, x, y, size, sw.LabelColor)
	return true
}

// Footer draws the color count at the left margin and the source name
// right-aligned against the right margin.
func Footer(s Surface, f session.Frame) {
	size := f.Spacing.FooterSize
	margin := f.Spacing.Margin

	s.DrawText(f.Count, margin, f.FooterY, size, f.Text)

	if f.Name == "" {
		return
	}
	countW, _ := s.MeasureText(f.Count, size)
	nameW, _ := s.MeasureText(f.Name, size)
	x := f.Viewport.Width - nameW - margin
	// Never draw the name over the count.
	if x < margin+countW {
		return
	}
	s.DrawText(f.Name, x, f.FooterY, size, f.Text)
}
