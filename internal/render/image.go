// Package render draws frames offscreen into an RGBA image.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	pvdraw "github.com/alexisbeaulieu97/pview/internal/draw"
	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/internal/session"
)

// ImageSurface implements draw.Surface on top of an *image.RGBA. Text sizes
// are pixel heights; a face is built once per size.
type ImageSurface struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[int]font.Face
}

var _ pvdraw.Surface = (*ImageSurface)(nil)

// NewImageSurface allocates a width x height canvas. fontPath selects a
// TrueType or OpenType file; empty uses Go Regular.
func NewImageSurface(width, height int, fontPath string) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	data := goregular.TTF
	if fontPath != "" {
		raw, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = raw
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &ImageSurface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		font:  ft,
		faces: make(map[int]font.Face),
	}, nil
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole canvas with c.
func (s *ImageSurface) Clear(c palette.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.ToRGBA()), image.Point{}, draw.Src)
}

// DrawSquare fills the size x size square whose top-left corner is (x, y).
func (s *ImageSurface) DrawSquare(x, y, size int, c palette.Color) {
	if size <= 0 {
		return
	}
	r := image.Rect(x, y, x+size, y+size)
	draw.Draw(s.img, r, image.NewUniform(c.ToRGBA()), image.Point{}, draw.Src)
}

// MeasureText returns the advance width and line height of text.
func (s *ImageSurface) MeasureText(text string, size int) (int, int) {
	face := s.face(size)
	width := font.MeasureString(face, text).Ceil()
	return width, face.Metrics().Height.Ceil()
}

// DrawText draws text with its top-left corner at (x, y).
func (s *ImageSurface) DrawText(text string, x, y, size int, c palette.Color) {
	face := s.face(size)
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.ToRGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// Close releases the cached faces.
func (s *ImageSurface) Close() error {
	for size, face := range s.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(s.faces, size)
	}
	return nil
}

func (s *ImageSurface) face(size int) font.Face {
	if face, ok := s.faces[size]; ok {
		return face
	}

	var face font.Face = basicfont.Face7x13
	if size > 0 {
		built, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			face = built
		}
	}
	s.faces[size] = face
	return face
}

// Options controls an offscreen render.
type Options struct {
	Width    int
	Height   int
	Spacing  session.Spacing
	FontPath string
}

// Frame renders the session's current frame into a new image.
func Frame(s *session.Session, opts Options) (*image.RGBA, error) {
	surface, err := NewImageSurface(opts.Width, opts.Height, opts.FontPath)
	if err != nil {
		return nil, err
	}
	defer surface.Close()

	frame := s.Frame(session.Viewport{Width: opts.Width, Height: opts.Height}, opts.Spacing)
	pvdraw.Frame(surface, frame)
	return surface.Image(), nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, creating or truncating the file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, img)
}
