package gl

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var errNoQuantizer = errors.New("no quantizer")

// NewSurfaceFromImage builds a surface the size of img, indexed by q.
func NewSurfaceFromImage(img image.Image, q Quantizer) (*Surface, error) {
	if q == nil {
		return nil, errNoQuantizer
	}

	b := img.Bounds()
	s, err := NewSurface(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	src, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Rect, img, b.Min, draw.Src)
	}
	q.Quantize(s, src)

	return s, nil
}

// DecodeSurface decodes any registered image format and indexes it with q.
func DecodeSurface(r io.Reader, q Quantizer) (*Surface, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	s, err := NewSurfaceFromImage(img, q)
	if err != nil {
		return nil, fmt.Errorf("could not index %s image: %w", format, err)
	}
	return s, nil
}

func LoadSurface(path string, q Quantizer) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			Logger().Warn("could not close image", "file", path, "error", closeErr)
		}
	}()

	s, err := DecodeSurface(f, q)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", path, err)
	}
	return s, nil
}
