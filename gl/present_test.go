package gl

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"pixcon/palette"
)

func TestToRGBA(t *testing.T) {
	c := newTestContext(t, 2, 2)
	copy(c.Surface().Data, []Pixel{0, 1, 3, 200})
	pal, _ := palette.Find("gameboy")

	if err := c.ToRGBA(pal, make([]byte, 15)); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("got %v, want ErrBufferTooSmall", err)
	}

	dst := make([]byte, 16)
	if err := c.ToRGBA(pal, dst); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x0F, 0x38, 0x0F, 0xFF,
		0x30, 0x62, 0x30, 0xFF,
		0x9B, 0xBC, 0x0F, 0xFF,
		0, 0, 0, 0,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x (%v)", i, dst[i], want[i], dst)
		}
	}

	img := c.ToImage(pal)
	if img.Rect.Dx() != 2 || img.Rect.Dy() != 2 || !bytes.Equal(img.Pix, dst) {
		t.Errorf("ToImage %v %v, want the ToRGBA bytes %v", img.Rect, img.Pix, dst)
	}
}

func TestScreenshot(t *testing.T) {
	c := newTestContext(t, 4, 3)
	for i := range c.Surface().Data {
		c.Surface().Data[i] = Pixel(i % 16)
	}
	pal, _ := palette.Find("pico-8")

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := c.Screenshot(pal, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("screenshot is %v", b)
	}
	for y := range 3 {
		for x := range 4 {
			got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if want := pal[(y*4+x)%16]; got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}

	if err := c.Screenshot(pal, filepath.Join(t.TempDir(), "missing", "shot.png")); err == nil {
		t.Error("screenshot into a missing directory should fail")
	}
}

func TestCopyFrom(t *testing.T) {
	c := newTestContext(t, 3, 3)
	c.Clipping(&Quad{0, 0, 0, 0})
	c.Transparent([]Pixel{1}, []bool{true})

	src := newTestSurface(t, 5, 2)
	c.CopyFrom(src)

	s := c.Surface()
	for y := range 3 {
		for x := range 3 {
			want := Pixel(0)
			if y < 2 {
				want = src.At(x, y)
			}
			if got := s.At(x, y); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}
