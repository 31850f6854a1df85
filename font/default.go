package font

import (
	"image"

	"pixcon/gl"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Default rasterises the inconsolata 8x16 face for printable ASCII.
func Default(bg, fg gl.Pixel) (*Font, error) {
	face := inconsolata.Regular8x16
	m := face.Metrics()
	cw := face.Advance
	ch := m.Height.Ceil()

	count := int(lastGlyph - firstGlyph + 1)
	rows := (count + atlasColumns - 1) / atlasColumns
	img := image.NewNRGBA(image.Rect(0, 0, atlasColumns*cw, rows*ch))

	d := xfont.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
	}
	for i := range count {
		col, row := i%atlasColumns, i/atlasColumns
		d.Dot = fixed.P(col*cw, row*ch+m.Ascent.Ceil())
		d.DrawString(string(rune(firstGlyph + i)))
	}

	atlas, err := gl.NewSurfaceFromImage(img, gl.AlphaQuantizer{Background: bg, Foreground: fg, Threshold: 0x7F})
	if err != nil {
		return nil, err
	}
	sheet, err := gl.NewSheet(atlas, cw, ch)
	if err != nil {
		return nil, err
	}
	return New(sheet), nil
}
