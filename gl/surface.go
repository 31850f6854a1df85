// Package gl is a software rasterizer drawing into palette-indexed surfaces.
//
// A Context owns the target surface and the drawing state (clipping region,
// index shifting, transparency, pen). Surfaces and sheets are plain index
// buffers; colours only come into play when a Context is presented through
// a palette.Palette. Nothing in the package is safe for concurrent use.
package gl

import (
	"errors"
	"fmt"
	"image"

	"pixcon/palette"
)

// Pixel is a palette index.
type Pixel = uint8

const MaxPaletteColors = palette.MaxColors

var (
	ErrInvalidSize    = errors.New("invalid size")
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Surface is a width×height buffer of palette indices, stored row-major
// with a stride equal to Width.
type Surface struct {
	Width, Height int
	Data          []Pixel
}

// NewSurface allocates a zero-filled surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %dx%d: %w", width, height, ErrInvalidSize)
	}

	Logger().Debug("surface allocated", "width", width, "height", height)
	return &Surface{
		Width:  width,
		Height: height,
		Data:   make([]Pixel, width*height),
	}, nil
}

// Release drops the pixel buffer and zeroes the surface.
func (s *Surface) Release() {
	*s = Surface{}
}

// Row returns the pixels of row y. The slice aliases Data and is capped at
// the row end.
func (s *Surface) Row(y int) []Pixel {
	o := y * s.Width
	return s.Data[o : o+s.Width : o+s.Width]
}

// Offset returns the index of (x, y) into Data.
func (s *Surface) Offset(x, y int) int {
	return y*s.Width + x
}

// At returns the index at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Data[s.Offset(x, y)]
}

// Set stores index at (x, y); coordinates outside the surface are ignored.
func (s *Surface) Set(x, y int, index Pixel) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	s.Data[s.Offset(x, y)] = index
}

func (s *Surface) Bounds() Rectangle {
	return Rectangle{Width: s.Width, Height: s.Height}
}

func (s *Surface) Clone() *Surface {
	return &Surface{
		Width:  s.Width,
		Height: s.Height,
		Data:   append([]Pixel(nil), s.Data...),
	}
}

// Paletted wraps the surface as an image.Paletted sharing its buffer.
// The palette is padded so that every index has a colour.
func (s *Surface) Paletted(pal palette.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     s.Data,
		Stride:  s.Width,
		Rect:    image.Rect(0, 0, s.Width, s.Height),
		Palette: pal.Colors(),
	}
}

// trim intersects area with the surface, moving pos by the amount cut off
// the left and top.
func (s *Surface) trim(area Rectangle, pos image.Point) (Rectangle, image.Point) {
	q := area.Quad()
	t := q.Intersect(s.Bounds().Quad())
	pos.X += t.X0 - q.X0
	pos.Y += t.Y0 - q.Y0
	return t.Rectangle(), pos
}
