package gl

// state is everything Push saves and Pop restores.
type state struct {
	clip        Quad
	background  Pixel
	color       Pixel
	pattern     uint32
	shifting    [MaxPaletteColors]Pixel
	transparent [MaxPaletteColors]bool
}

// Context is a surface plus the drawing state every primitive honours:
// writes never leave the clipping region, source indices go through the
// shifting table and shifted indices flagged transparent are not written.
type Context struct {
	surface Surface
	state
	stack []state
}

// NewContext allocates a width×height target with the default state: full
// clipping region, identity shifting, only index 0 transparent.
func NewContext(width, height int) (*Context, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}

	c := &Context{surface: *s}
	c.Clipping(nil)
	c.Shifting(nil, nil)
	c.Transparent(nil, nil)

	Logger().Debug("context allocated", "width", width, "height", height)
	return c, nil
}

// Release frees the surface; the context must not be used afterwards.
func (c *Context) Release() {
	c.surface.Release()
	*c = Context{}
	Logger().Debug("context deallocated")
}

// Surface returns the drawing target. Writes to it bypass the context
// state.
func (c *Context) Surface() *Surface {
	return &c.surface
}

func (c *Context) Width() int  { return c.surface.Width }
func (c *Context) Height() int { return c.surface.Height }

// Clipping sets the region writes are restricted to. nil selects the whole
// surface; otherwise the region is clamped to the surface and a region
// outside of it leaves nothing drawable.
func (c *Context) Clipping(region *Quad) {
	full := c.surface.Bounds().Quad()
	if region == nil {
		c.clip = full
		return
	}
	c.clip = region.Intersect(full)
}

func (c *Context) ClippingRegion() Quad {
	return c.clip
}

// Shifting remaps from[i] to to[i]. A nil from restores the identity
// table.
func (c *Context) Shifting(from, to []Pixel) {
	if from == nil {
		for i := range c.shifting {
			c.shifting[i] = Pixel(i)
		}
		return
	}

	for i := range min(len(from), len(to)) {
		c.shifting[from[i]] = to[i]
	}
}

// Transparent flags indexes[i] with flags[i]. nil indexes restores the
// default, where only index 0 is transparent.
func (c *Context) Transparent(indexes []Pixel, flags []bool) {
	if indexes == nil {
		c.transparent = [MaxPaletteColors]bool{0: true}
		return
	}

	for i := range min(len(indexes), len(flags)) {
		c.transparent[indexes[i]] = flags[i]
	}
}

func (c *Context) Background(index Pixel) { c.background = index }
func (c *Context) Color(index Pixel)      { c.color = index }

// Pattern sets the pen mask. Bit ((y&3)<<3)|(x&7) set suppresses the pen
// at (x, y); 0 is solid.
func (c *Context) Pattern(mask uint32) { c.pattern = mask }

// Shifted returns the index a source index is drawn as.
func (c *Context) Shifted(index Pixel) Pixel {
	return c.shifting[index]
}

// IsTransparent reports whether a shifted index is skipped when drawing.
func (c *Context) IsTransparent(index Pixel) bool {
	return c.transparent[index]
}

// Push saves the drawing state.
func (c *Context) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the state saved by the matching Push. It reports false,
// leaving the state alone, when nothing was pushed.
func (c *Context) Pop() bool {
	n := len(c.stack)
	if n == 0 {
		return false
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
	return true
}

// Clear fills the whole surface, ignoring the clipping region, with the
// background index.
func (c *Context) Clear() {
	bg := c.background
	for i := range c.surface.Data {
		c.surface.Data[i] = bg
	}
}

// put composites one source index onto the destination pixel.
func (c *Context) put(dst *Pixel, index Pixel) {
	if index = c.shifting[index]; !c.transparent[index] {
		*dst = index
	}
}
