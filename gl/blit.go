package gl

import (
	"image"
	"math"
)

// Blit copies area of src with its top-left corner at pos.
func (c *Context) Blit(src *Surface, area Rectangle, pos image.Point) {
	area, pos = src.trim(area, pos)

	dr, skipX, skipY := Rect(pos.X, pos.Y, area.Width, area.Height).Quad().clip(c.clip)
	if dr.Empty() {
		return
	}

	width := dr.Width()
	sx := area.X + skipX
	for i := range dr.Height() {
		srow := src.Row(area.Y + skipY + i)[sx : sx+width]
		drow := c.surface.Row(dr.Y0 + i)[dr.X0 : dr.X0+width]
		for j, index := range srow {
			c.put(&drow[j], index)
		}
	}
}

// BlitScaled draws area of src stretched by (scaleX, scaleY), nearest
// neighbour. A negative factor mirrors that axis; a zero factor draws
// nothing. Samples are kept inside area, and those landing outside src
// leave the destination untouched, as Blit does.
func (c *Context) BlitScaled(src *Surface, area Rectangle, pos image.Point, scaleX, scaleY float64) {
	if scaleX == 0 || scaleY == 0 {
		return
	}

	aq := area.Quad()
	bounds := aq.Intersect(src.Bounds().Quad())
	if bounds.Empty() {
		return
	}

	drawingWidth := int(float64(area.Width)*math.Abs(scaleX) + 0.5)
	drawingHeight := int(float64(area.Height)*math.Abs(scaleY) + 0.5)

	dr, clipX, clipY := Rect(pos.X, pos.Y, drawingWidth, drawingHeight).Quad().clip(c.clip)
	if dr.Empty() {
		return
	}

	// Texture space deltas, signed.
	du := 1 / scaleX
	dv := 1 / scaleY

	ou := float64(area.X) + float64(clipX)/scaleX
	if scaleX < 0 {
		ou += float64(area.Width) + du
	}
	ov := float64(area.Y) + float64(clipY)/scaleY
	if scaleY < 0 {
		ov += float64(area.Height) + dv
	}

	width := dr.Width()
	v := ov
	for i := range dr.Height() {
		y := clampInt(int(math.Floor(v)), aq.Y0, aq.Y1)
		v += dv
		if y < bounds.Y0 || y > bounds.Y1 {
			continue
		}

		srow := src.Row(y)
		drow := c.surface.Row(dr.Y0 + i)[dr.X0 : dr.X0+width]

		u := ou
		for j := range drow {
			x := clampInt(int(math.Floor(u)), aq.X0, aq.X1)
			u += du
			if x >= bounds.X0 && x <= bounds.X1 {
				c.put(&drow[j], srow[x])
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
