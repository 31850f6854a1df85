package gl

import "image"

// Fill repaints with index the 4-connected region of equal indices around
// seed, within the clipping region. Indices are written as given, without
// shifting or transparency.
func (c *Context) Fill(seed image.Point, index Pixel) {
	clip := c.clip
	if !clip.Contains(seed.X, seed.Y) {
		return
	}

	s := &c.surface
	match := s.Data[s.Offset(seed.X, seed.Y)]
	if match == index {
		return
	}

	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row := s.Row(p.Y)
		if row[p.X] != match { // reached by an earlier span
			continue
		}

		x := p.X
		for x > clip.X0 && row[x-1] == match {
			x--
		}

		var above, below []Pixel
		if p.Y > clip.Y0 {
			above = s.Row(p.Y - 1)
		}
		if p.Y < clip.Y1 {
			below = s.Row(p.Y + 1)
		}

		var inAbove, inBelow bool
		for ; x <= clip.X1 && row[x] == match; x++ {
			row[x] = index

			if above != nil {
				if above[x] != match {
					inAbove = false
				} else if !inAbove {
					stack = append(stack, image.Point{X: x, Y: p.Y - 1})
					inAbove = true
				}
			}
			if below != nil {
				if below[x] != match {
					inBelow = false
				} else if !inBelow {
					stack = append(stack, image.Point{X: x, Y: p.Y + 1})
					inBelow = true
				}
			}
		}
	}
}
