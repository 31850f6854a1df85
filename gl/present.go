package gl

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"pixcon/palette"
)

// ToRGBA writes the surface into dst as row-major R, G, B, A bytes.
// Indices past the end of pal come out as transparent black.
func (c *Context) ToRGBA(pal palette.Palette, dst []byte) error {
	n := len(c.surface.Data) * 4
	if len(dst) < n {
		return fmt.Errorf("need %d bytes, got %d: %w", n, len(dst), ErrBufferTooSmall)
	}
	c.toRGBA(pal, dst)
	return nil
}

// ToImage returns a true-colour copy of the surface.
func (c *Context) ToImage(pal palette.Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.surface.Width, c.surface.Height))
	c.toRGBA(pal, img.Pix)
	return img
}

func (c *Context) toRGBA(pal palette.Palette, dst []byte) {
	var colors [MaxPaletteColors]color.NRGBA
	for i := range colors {
		colors[i] = pal.At(i)
	}

	for i, index := range c.surface.Data {
		col := colors[index]
		o := i * 4
		dst[o+0] = col.R
		dst[o+1] = col.G
		dst[o+2] = col.B
		dst[o+3] = col.A
	}
}

// CopyFrom copies the top-left block src and the context share, ignoring
// the drawing state.
func (c *Context) CopyFrom(src *Surface) {
	width := min(c.surface.Width, src.Width)
	height := min(c.surface.Height, src.Height)
	for y := range height {
		copy(c.surface.Row(y)[:width], src.Row(y)[:width])
	}
}

// Screenshot saves the surface, presented through pal, as a PNG file.
func (c *Context) Screenshot(pal palette.Palette, path string) error {
	if err := writePNG(c.ToImage(pal), path); err != nil {
		Logger().Warn("can't save screenshot", "file", path, "error", err)
		return err
	}
	return nil
}

// writePNG encodes to a temporary file next to path and renames it into
// place once complete.
func writePNG(img image.Image, path string) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	outFile, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", path, defErr)
			canRename = false
		}

		if canRename {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		} else {
			_ = os.Remove(outFile.Name())
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err = enc.Encode(outFile, img); err != nil {
		return fmt.Errorf("could not encode PNG %q: %w", path, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush PNG %q: %w", path, err)
	}

	canRename = true
	return nil
}
