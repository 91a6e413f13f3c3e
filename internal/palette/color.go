package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses a six digit RRGGBB token. A single leading '#' is accepted.
func ParseHex(token string) (Color, error) {
	hex := strings.TrimPrefix(token, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", token)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: not hexadecimal", token)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ParseHex for constants; it panics on malformed input.
func MustHex(token string) Color {
	c, err := ParseHex(token)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the uppercase RRGGBB label used on swatches.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "#" + c.Hex()
}

// ToRGBA converts the color to an opaque image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
