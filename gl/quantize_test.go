package gl

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixcon/palette"
)

func TestNearestQuantizer(t *testing.T) {
	pal, _ := palette.Find("pico-8")

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, pal[8])
	img.SetNRGBA(1, 0, color.NRGBA{0x28, 0xAA, 0xFE, 0xFF})
	img.SetNRGBA(2, 0, color.NRGBA{0xFF, 0xFF, 0xFF, 0x00})

	s, err := NewSurfaceFromImage(img, NearestQuantizer{Palette: pal, Transparent: 0})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Pixel{8, 12, 0}; !bytes.Equal(s.Data, want) {
		t.Errorf("got %v, want %v", s.Data, want)
	}

	s, err = NewSurfaceFromImage(img, NearestQuantizer{Palette: pal, Opaque: true})
	if err != nil {
		t.Fatal(err)
	}
	if s.Data[2] == 0 {
		t.Error("opaque quantizer should match transparent pixels by colour")
	}
}

func TestDitherQuantizer(t *testing.T) {
	pal, _ := palette.Find("bw")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := range 4 {
		img.SetNRGBA(x, 0, color.NRGBA{A: 0xFF})
		img.SetNRGBA(x, 1, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
	}

	s, err := NewSurfaceFromImage(img, DitherQuantizer{Palette: pal})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Pixel{0, 0, 0, 0, 1, 1, 1, 1}; !bytes.Equal(s.Data, want) {
		t.Errorf("got %v, want %v", s.Data, want)
	}

	gray := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(gray.Pix); i += 4 {
		gray.Pix[i], gray.Pix[i+1], gray.Pix[i+2], gray.Pix[i+3] = 0x80, 0x80, 0x80, 0xFF
	}
	s, err = NewSurfaceFromImage(gray, DitherQuantizer{Palette: pal})
	if err != nil {
		t.Fatal(err)
	}
	ones := bytes.Count(s.Data, []byte{1})
	if ones < 16 || ones > 48 {
		t.Errorf("mid gray dithered to %d/64 white pixels", ones)
	}

	holes := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	holes.SetNRGBA(0, 0, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
	holes.SetNRGBA(1, 0, color.NRGBA{0xFF, 0xFF, 0xFF, 0x00})
	holes.SetNRGBA(2, 0, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
	s, err = NewSurfaceFromImage(holes, DitherQuantizer{Palette: pal, Transparent: 7})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Pixel{1, 7, 1}; !bytes.Equal(s.Data, want) {
		t.Errorf("transparent pixel: got %v, want %v", s.Data, want)
	}

	s, err = NewSurfaceFromImage(holes, DitherQuantizer{Palette: pal, Transparent: 7, Opaque: true})
	if err != nil {
		t.Fatal(err)
	}
	if s.Data[1] == 7 {
		t.Error("opaque dithering should match transparent pixels by colour")
	}
}

func TestAlphaQuantizer(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0xFF, 0, 0, 0x00})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0x10})
	img.SetNRGBA(2, 0, color.NRGBA{0, 0, 0, 0xFF})

	s, err := NewSurfaceFromImage(img, AlphaQuantizer{Background: 4, Foreground: 9, Threshold: 0x10})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Pixel{4, 4, 9}; !bytes.Equal(s.Data, want) {
		t.Errorf("got %v, want %v", s.Data, want)
	}
}

func TestNewSurfaceFromSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 3, color.White)

	sub := img.SubImage(image.Rect(2, 2, 4, 4))
	s, err := NewSurfaceFromImage(sub, QuantizerFunc(func(dst *Surface, src *image.NRGBA) {
		for y := range dst.Height {
			for x := range dst.Width {
				if src.NRGBAAt(x, y).R == 0xFF {
					dst.Set(x, y, 1)
				}
			}
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 2 || s.Height != 2 || s.At(0, 1) != 1 || s.At(1, 1) != 0 {
		t.Errorf("sub image indexed as %+v", s)
	}

	if _, err := NewSurfaceFromImage(img, nil); err == nil {
		t.Error("nil quantizer should fail")
	}
}

func TestDecodeAndLoadSurface(t *testing.T) {
	pal, _ := palette.Find("vga16")

	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal.Colors()[:16])
	copy(img.Pix, []uint8{1, 2, 14, 15})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tile.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSurface(path, NearestQuantizer{Palette: pal})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Pixel{1, 2, 14, 15}; !bytes.Equal(s.Data, want) {
		t.Errorf("got %v, want %v", s.Data, want)
	}

	if _, err := DecodeSurface(strings.NewReader("not an image"), NearestQuantizer{Palette: pal}); err == nil {
		t.Error("garbage should not decode")
	}
	if _, err := LoadSurface(filepath.Join(t.TempDir(), "missing.png"), NearestQuantizer{Palette: pal}); err == nil {
		t.Error("missing file should fail")
	}
}
