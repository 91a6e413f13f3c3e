// Package palette holds the fixed-capacity color lists shown by the viewer
// and the store that owns the active one.
package palette

// Capacity is the maximum number of colors a Palette holds.
const Capacity = 256

// Malformed records a token that could not be read as a color.
type Malformed struct {
	Line  int
	Token string
}

// Palette is an ordered list of at most Capacity colors. The zero value is an
// empty palette. A Palette never shares its backing storage with callers.
type Palette struct {
	name      string
	colors    []Color
	truncated bool
	skipped   []Malformed
}

// New builds a palette from colors, keeping at most Capacity entries in order.
func New(name string, colors []Color) Palette {
	p := Palette{name: name}
	n := len(colors)
	if n > Capacity {
		n = Capacity
		p.truncated = true
	}
	p.colors = make([]Color, n)
	copy(p.colors, colors[:n])
	return p
}

// Name returns the palette's source name.
func (p Palette) Name() string {
	return p.name
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the i-th color in display order.
func (p Palette) At(i int) Color {
	return p.colors[i]
}

// Colors returns a copy of the colors in display order.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Truncated reports whether the source held more than Capacity colors.
func (p Palette) Truncated() bool {
	return p.truncated
}

// Skipped lists tokens dropped while parsing.
func (p Palette) Skipped() []Malformed {
	out := make([]Malformed, len(p.skipped))
	copy(out, p.skipped)
	return out
}
