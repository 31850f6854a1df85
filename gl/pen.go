package gl

import "image"

// Point plots the pen at p.
func (c *Context) Point(p image.Point) {
	c.FillRect(Rect(p.X, p.Y, 1, 1))
}

// HLine draws length pixels rightwards from p.
func (c *Context) HLine(p image.Point, length int) {
	c.FillRect(Rect(p.X, p.Y, length, 1))
}

// VLine draws length pixels downwards from p.
func (c *Context) VLine(p image.Point, length int) {
	c.FillRect(Rect(p.X, p.Y, 1, length))
}

// FillRect paints r with the pen colour through the pattern mask.
func (c *Context) FillRect(r Rectangle) {
	dr, _, _ := r.Quad().clip(c.clip)
	if dr.Empty() {
		return
	}

	index := c.shifting[c.color]
	if c.transparent[index] {
		return
	}

	for y := dr.Y0; y <= dr.Y1; y++ {
		row := c.surface.Row(y)
		for x := dr.X0; x <= dr.X1; x++ {
			if c.pattern&(1<<(((y&3)<<3)|(x&7))) != 0 {
				continue
			}
			row[x] = index
		}
	}
}
