package gl

import (
	"image"
	"image/color"

	"pixcon/palette"

	"golang.org/x/image/draw"
)

// Quantizer fills dst with indices for the true-colour pixels of src. Both
// have the same size and src is anchored at the origin.
type Quantizer interface {
	Quantize(dst *Surface, src *image.NRGBA)
}

type QuantizerFunc func(dst *Surface, src *image.NRGBA)

func (f QuantizerFunc) Quantize(dst *Surface, src *image.NRGBA) {
	f(dst, src)
}

// NearestQuantizer maps each pixel to the perceptually closest palette
// entry. Fully transparent pixels become Transparent unless Opaque is set.
type NearestQuantizer struct {
	Palette     palette.Palette
	Transparent Pixel
	Opaque      bool
}

func (q NearestQuantizer) Quantize(dst *Surface, src *image.NRGBA) {
	m := palette.NewMatcher(q.Palette)
	for y := range dst.Height {
		row := dst.Row(y)
		for x := range row {
			c := src.NRGBAAt(x, y)
			if c.A == 0 && !q.Opaque {
				row[x] = q.Transparent
				continue
			}
			row[x] = Pixel(m.Index(c))
		}
	}
}

// DitherQuantizer spreads the quantization error with Floyd-Steinberg
// diffusion. Matching is plain RGB distance; fully transparent pixels are
// then set to Transparent unless Opaque is set.
type DitherQuantizer struct {
	Palette     palette.Palette
	Transparent Pixel
	Opaque      bool
}

func (q DitherQuantizer) Quantize(dst *Surface, src *image.NRGBA) {
	if len(q.Palette) == 0 {
		return
	}

	pal := make(color.Palette, len(q.Palette))
	for i, c := range q.Palette {
		pal[i] = c
	}
	img := &image.Paletted{
		Pix:     dst.Data,
		Stride:  dst.Width,
		Rect:    image.Rect(0, 0, dst.Width, dst.Height),
		Palette: pal,
	}
	draw.FloydSteinberg.Draw(img, img.Rect, src, image.Point{})
	if q.Opaque {
		return
	}

	for y := range dst.Height {
		row := dst.Row(y)
		for x := range row {
			if src.Pix[src.PixOffset(x, y)+3] == 0 {
				row[x] = q.Transparent
			}
		}
	}
}

// AlphaQuantizer turns a coverage mask into two indices: pixels with alpha
// above Threshold get Foreground, the others Background.
type AlphaQuantizer struct {
	Background, Foreground Pixel
	Threshold              uint8
}

func (q AlphaQuantizer) Quantize(dst *Surface, src *image.NRGBA) {
	for y := range dst.Height {
		row := dst.Row(y)
		for x := range row {
			if src.Pix[src.PixOffset(x, y)+3] > q.Threshold {
				row[x] = q.Foreground
			} else {
				row[x] = q.Background
			}
		}
	}
}
