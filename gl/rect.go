package gl

import "image"

// Rectangle is an origin plus a size.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Rect builds a Rectangle from a point and a size.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Quad returns the inclusive corners of r.
func (r Rectangle) Quad() Quad {
	return Quad{X0: r.X, Y0: r.Y, X1: r.X + r.Width - 1, Y1: r.Y + r.Height - 1}
}

func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Image converts to the half-open image.Rectangle form.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Quad is a region given by its inclusive corners. X1 < X0 or Y1 < Y0 is
// an empty region.
type Quad struct {
	X0, Y0, X1, Y1 int
}

func (q Quad) Width() int  { return q.X1 - q.X0 + 1 }
func (q Quad) Height() int { return q.Y1 - q.Y0 + 1 }

func (q Quad) Empty() bool {
	return q.X1 < q.X0 || q.Y1 < q.Y0
}

// Contains reports whether (x, y) lies inside q.
func (q Quad) Contains(x, y int) bool {
	return x >= q.X0 && x <= q.X1 && y >= q.Y0 && y <= q.Y1
}

// Intersect returns the overlap of q and o, possibly empty.
func (q Quad) Intersect(o Quad) Quad {
	return Quad{
		X0: max(q.X0, o.X0),
		Y0: max(q.Y0, o.Y0),
		X1: min(q.X1, o.X1),
		Y1: min(q.Y1, o.Y1),
	}
}

func (q Quad) Rectangle() Rectangle {
	return Rectangle{X: q.X0, Y: q.Y0, Width: q.Width(), Height: q.Height()}
}

// clip restricts the drawing region q to the clipping region and reports
// how many columns and rows were cut off its left and top.
func (q Quad) clip(c Quad) (r Quad, skipX, skipY int) {
	r = q
	if r.X0 < c.X0 {
		skipX = c.X0 - r.X0
		r.X0 = c.X0
	}
	if r.Y0 < c.Y0 {
		skipY = c.Y0 - r.Y0
		r.Y0 = c.Y0
	}
	if r.X1 > c.X1 {
		r.X1 = c.X1
	}
	if r.Y1 > c.Y1 {
		r.Y1 = c.Y1
	}
	return r, skipX, skipY
}
