package gl

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"testing"
)

func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()
	c, err := NewContext(w, h)
	if err != nil {
		t.Fatalf("NewContext(%d, %d): %v", w, h, err)
	}
	t.Cleanup(c.Release)
	return c
}

// newTestSurface fills a surface with 1, 2, 3, ... in raster order, wrapping
// before 0 so that every pixel is opaque by default.
func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d): %v", w, h, err)
	}
	for i := range s.Data {
		s.Data[i] = Pixel(1 + i%255)
	}
	return s
}

func fillSurface(s *Surface, index Pixel) {
	for i := range s.Data {
		s.Data[i] = index
	}
}

// assertOutsideUnchanged fails if any pixel outside clip differs between
// before and after.
func assertOutsideUnchanged(t *testing.T, before, after *Surface, clip Quad) {
	t.Helper()
	for y := range after.Height {
		for x := range after.Width {
			if clip.Contains(x, y) {
				continue
			}
			if b, a := before.At(x, y), after.At(x, y); b != a {
				t.Fatalf("pixel (%d,%d) outside clip %v changed from %d to %d", x, y, clip, b, a)
			}
		}
	}
}

func TestNewContextDefaults(t *testing.T) {
	c := newTestContext(t, 16, 9)

	if c.Width() != 16 || c.Height() != 9 {
		t.Fatalf("size %dx%d", c.Width(), c.Height())
	}
	if want := (Quad{0, 0, 15, 8}); c.ClippingRegion() != want {
		t.Errorf("clip = %v, want %v", c.ClippingRegion(), want)
	}
	for i := range MaxPaletteColors {
		if got := c.Shifted(Pixel(i)); got != Pixel(i) {
			t.Fatalf("shifting[%d] = %d", i, got)
		}
		if got := c.IsTransparent(Pixel(i)); got != (i == 0) {
			t.Fatalf("transparent[%d] = %v", i, got)
		}
	}

	if _, err := NewContext(0, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: got %v, want ErrInvalidSize", err)
	}
}

func TestClippingIsClamped(t *testing.T) {
	c := newTestContext(t, 8, 8)

	c.Clipping(&Quad{-3, 2, 20, 5})
	if want := (Quad{0, 2, 7, 5}); c.ClippingRegion() != want {
		t.Errorf("clip = %v, want %v", c.ClippingRegion(), want)
	}

	c.Clipping(&Quad{10, 10, 12, 12})
	if !c.ClippingRegion().Empty() {
		t.Errorf("clip outside the surface should be empty, got %v", c.ClippingRegion())
	}

	src := newTestSurface(t, 8, 8)
	before := c.Surface().Clone()
	c.Blit(src, src.Bounds(), image.Point{})
	c.Color(5)
	c.FillRect(Rect(0, 0, 8, 8))
	c.Fill(image.Point{X: 1, Y: 1}, 3)
	c.BlitXForm(src, image.Point{}, NewXForm(ClampRepeat))
	if !bytes.Equal(before.Data, c.Surface().Data) {
		t.Error("drawing with an empty clipping region changed the surface")
	}

	c.Clipping(nil)
	if want := (Quad{0, 0, 7, 7}); c.ClippingRegion() != want {
		t.Errorf("reset clip = %v, want %v", c.ClippingRegion(), want)
	}
}

func TestShiftingAndTransparentTables(t *testing.T) {
	c := newTestContext(t, 4, 4)

	c.Shifting([]Pixel{1, 2}, []Pixel{9, 8})
	if c.Shifted(1) != 9 || c.Shifted(2) != 8 || c.Shifted(3) != 3 {
		t.Errorf("partial shifting not applied")
	}
	c.Shifting(nil, nil)
	if c.Shifted(1) != 1 {
		t.Errorf("shifting not reset")
	}

	c.Transparent([]Pixel{0, 7}, []bool{false, true})
	if c.IsTransparent(0) || !c.IsTransparent(7) {
		t.Errorf("partial transparency not applied")
	}
	c.Transparent(nil, nil)
	if !c.IsTransparent(0) || c.IsTransparent(7) {
		t.Errorf("transparency not reset")
	}
}

func TestPushPop(t *testing.T) {
	c := newTestContext(t, 8, 8)

	if c.Pop() {
		t.Fatal("Pop on an empty stack should report false")
	}

	c.Background(3)
	c.Push()
	c.Background(4)
	c.Color(5)
	c.Pattern(PatternChecker)
	c.Clipping(&Quad{1, 1, 2, 2})
	c.Shifting([]Pixel{1}, []Pixel{2})
	c.Transparent([]Pixel{1}, []bool{true})

	if !c.Pop() {
		t.Fatal("Pop should restore the pushed state")
	}
	if c.background != 3 || c.color != 0 || c.pattern != 0 {
		t.Errorf("scalars not restored: bg=%d color=%d pattern=%#x", c.background, c.color, c.pattern)
	}
	if c.ClippingRegion() != (Quad{0, 0, 7, 7}) {
		t.Errorf("clip not restored: %v", c.ClippingRegion())
	}
	if c.Shifted(1) != 1 || c.IsTransparent(1) {
		t.Error("tables not restored")
	}
}

func TestClear(t *testing.T) {
	c := newTestContext(t, 5, 3)
	c.Clipping(&Quad{1, 1, 2, 2})
	c.Background(6)
	c.Clear()
	for i, p := range c.Surface().Data {
		if p != 6 {
			t.Fatalf("pixel %d = %d, want 6", i, p)
		}
	}
}

func TestPen(t *testing.T) {
	c := newTestContext(t, 8, 8)
	c.Color(4)

	c.Point(image.Point{X: 1, Y: 1})
	c.HLine(image.Point{X: -2, Y: 3}, 5)
	c.VLine(image.Point{X: 6, Y: 6}, 10)

	s := c.Surface()
	if s.At(1, 1) != 4 {
		t.Error("point not drawn")
	}
	for x := range 8 {
		want := Pixel(0)
		if x <= 2 {
			want = 4
		}
		if got := s.At(x, 3); got != want {
			t.Errorf("hline pixel %d = %d, want %d", x, got, want)
		}
	}
	if s.At(6, 6) != 4 || s.At(6, 7) != 4 || s.At(6, 5) != 0 {
		t.Error("vline wrong")
	}

	c.Color(0) // transparent pen
	c.FillRect(Rect(0, 0, 8, 8))
	if s.At(1, 1) != 4 {
		t.Error("transparent pen should not draw")
	}
}

func TestPenPattern(t *testing.T) {
	c := newTestContext(t, 8, 8)
	c.Color(2)
	c.Pattern(PatternChecker)
	c.FillRect(Rect(0, 0, 8, 8))

	s := c.Surface()
	for y := range 8 {
		for x := range 8 {
			want := Pixel(2)
			if (x+y)%2 == 1 {
				want = 0
			}
			if got := s.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	c.Clear()
	c.Pattern(PatternLines)
	c.FillRect(Rect(0, 0, 8, 8))
	if s.At(3, 0) != 2 || s.At(3, 1) != 0 || s.At(3, 2) != 2 {
		t.Error("line pattern should skip odd rows")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c, err := NewContext(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c.Release()
	if !bytes.Contains(buf.Bytes(), []byte("context allocated")) || !bytes.Contains(buf.Bytes(), []byte("context deallocated")) {
		t.Errorf("lifecycle not logged: %s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be silent")
	}
}
