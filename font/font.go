// Package font writes text with bitmap fonts stored as gl sheets, one
// glyph per cell starting at ' '.
package font

import (
	"fmt"
	"image"
	"math"
	"strings"

	"pixcon/gl"
)

type Align int

const (
	Left Align = iota
	Center
	Right
)

var alignNames = [...]string{
	Left:   "left",
	Center: "center",
	Right:  "right",
}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign accepts the alignment names or their first letter.
func ParseAlign(s string) (Align, error) {
	for i, name := range alignNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Align(i), nil
		}
	}
	return Left, fmt.Errorf("unknown alignment %q", s)
}

type Font struct {
	sheet *gl.Sheet
}

// New wraps a sheet; the font takes ownership of it.
func New(sheet *gl.Sheet) *Font {
	gl.Logger().Debug("font allocated", "glyphs", sheet.Len(), "width", sheet.CellWidth, "height", sheet.CellHeight)
	return &Font{sheet: sheet}
}

// Load reads a glyph sheet. Transparent atlas pixels become bg, the others
// fg.
func Load(path string, glyphWidth, glyphHeight int, bg, fg gl.Pixel) (*Font, error) {
	sheet, err := gl.LoadSheet(path, glyphWidth, glyphHeight, gl.AlphaQuantizer{Background: bg, Foreground: fg})
	if err != nil {
		return nil, fmt.Errorf("could not load font: %w", err)
	}
	return New(sheet), nil
}

func (f *Font) Sheet() *gl.Sheet {
	return f.sheet
}

func (f *Font) Release() {
	f.sheet.Release()
	gl.Logger().Debug("font deallocated")
}

// Size returns the unscaled extent of text: its widest line by the number
// of lines.
func (f *Font) Size(text string) (width, height int) {
	lines := strings.Split(text, "\n")
	return longestLine(lines) * f.sheet.CellWidth, len(lines) * f.sheet.CellHeight
}

// Write draws text with the context state. pos is the top-left corner for
// Left, the top-centre for Center and the top-right corner for Right; the
// widest line sets the alignment of all of them.
func (f *Font) Write(ctx *gl.Context, text string, pos image.Point, align Align) {
	f.write(ctx, text, pos, 1, 1, align)
}

// WriteScaled is Write with glyphs stretched by (scaleX, scaleY). Negative
// factors mirror each glyph in place.
func (f *Font) WriteScaled(ctx *gl.Context, text string, pos image.Point, scaleX, scaleY float64, align Align) {
	f.write(ctx, text, pos, scaleX, scaleY, align)
}

func (f *Font) write(ctx *gl.Context, text string, pos image.Point, scaleX, scaleY float64, align Align) {
	dw := float64(f.sheet.CellWidth) * math.Abs(scaleX)
	dh := float64(f.sheet.CellHeight) * math.Abs(scaleY)

	width := float64(longestLine(strings.Split(text, "\n"))) * dw
	ox := float64(pos.X)
	switch align {
	case Center:
		ox -= width * 0.5
	case Right:
		ox -= width
	}

	unscaled := scaleX == 1 && scaleY == 1
	x, y := ox, float64(pos.Y)
	for _, r := range text {
		if r == '\n' {
			x = ox
			y += dh
			continue
		}

		glyph := int(r - ' ')
		if glyph < 0 || glyph >= f.sheet.Len() {
			continue
		}

		p := image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
		if unscaled {
			ctx.Blit(f.sheet.Atlas, f.sheet.Cell(glyph), p)
		} else {
			ctx.BlitScaled(f.sheet.Atlas, f.sheet.Cell(glyph), p, scaleX, scaleY)
		}
		x += dw
	}
}

func longestLine(lines []string) int {
	n := 0
	for _, line := range lines {
		n = max(n, len([]rune(line)))
	}
	return n
}
