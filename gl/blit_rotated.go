package gl

import (
	"image"
	"math"
)

// BlitRotated draws area of src scaled by (scaleX, scaleY) and rotated by
// angle radians, both around the anchor. The anchor is given relative to
// the area size, (0.5, 0.5) being its centre, and lands on pos.
//
// Destination pixels are mapped back into the source with the inverse
// transform; those falling outside area are left untouched.
func (c *Context) BlitRotated(src *Surface, area Rectangle, pos image.Point, scaleX, scaleY, angle, anchorX, anchorY float64) {
	if scaleX == 0 || scaleY == 0 {
		return
	}

	w := float64(area.Width)
	h := float64(area.Height)
	sw := w * scaleX
	sh := h * scaleY

	sax := w * anchorX // anchor in source space
	say := h * anchorY
	dax := sw * anchorX // and in scaled space
	day := sh * anchorY

	dx := float64(pos.X)
	dy := float64(pos.Y)

	sin, cos := math.Sincos(angle)

	// Corners of the scaled area around the anchor, rotated by
	//
	//      | c  -s |
	//  R = |       |
	//      | s   c |
	x0, y0 := rotate(-dax, -day, cos, sin)
	x1, y1 := rotate(sw-dax, -day, cos, sin)
	x2, y2 := rotate(sw-dax, sh-day, cos, sin)
	x3, y3 := rotate(-dax, sh-day, cos, sin)

	aabb := Quad{
		X0: int(math.Floor(min(x0, x1, x2, x3) + dx)),
		Y0: int(math.Floor(min(y0, y1, y2, y3) + dy)),
		X1: int(math.Floor(max(x0, x1, x2, x3) + dx)),
		Y1: int(math.Floor(max(y0, y1, y2, y3) + dy)),
	}
	dr, _, _ := aabb.clip(c.clip)
	if dr.Empty() {
		return
	}

	bounds := area.Quad().Intersect(src.Bounds().Quad())
	if bounds.Empty() {
		return
	}

	// Inverse of scale-then-rotate: rotate back, then divide by scale.
	m11 := cos / scaleX
	m12 := sin / scaleX
	m21 := -sin / scaleY
	m22 := cos / scaleY

	// Top-left of the clipped region in texture space.
	tlx := float64(dr.X0) - dx
	tly := float64(dr.Y0) - dy
	ou := tlx*m11 + tly*m12 + sax + float64(area.X)
	ov := tlx*m21 + tly*m22 + say + float64(area.Y)

	width := dr.Width()
	for i := range dr.Height() {
		drow := c.surface.Row(dr.Y0 + i)[dr.X0 : dr.X0+width]

		u, v := ou, ov
		for j := range drow {
			x := int(math.Floor(u))
			y := int(math.Floor(v))
			if bounds.Contains(x, y) {
				c.put(&drow[j], src.Data[src.Offset(x, y)])
			}
			u += m11
			v += m21
		}

		ou += m12
		ov += m22
	}
}

func rotate(x, y, cos, sin float64) (float64, float64) {
	return cos*x - sin*y, sin*x + cos*y
}
