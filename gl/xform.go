package gl

import (
	"fmt"
	"image"
	"math"
)

// ClampMode selects how BlitXForm addresses source coordinates outside the
// surface.
type ClampMode int

const (
	// ClampNone skips destination pixels mapping outside the source.
	ClampNone ClampMode = iota
	// ClampEdge repeats the border pixels.
	ClampEdge
	// ClampRepeat tiles the source, mirrored around the origin.
	ClampRepeat
)

var clampNames = [...]string{
	ClampNone:   "none",
	ClampEdge:   "edge",
	ClampRepeat: "repeat",
}

func (m ClampMode) String() string {
	if m < 0 || int(m) >= len(clampNames) {
		return fmt.Sprintf("ClampMode(%d)", int(m))
	}
	return clampNames[m]
}

func ParseClampMode(s string) (ClampMode, error) {
	for i, name := range clampNames {
		if name == s {
			return ClampMode(i), nil
		}
	}
	return ClampNone, fmt.Errorf("unknown clamp mode %q", s)
}

// Registers hold the mode-7 style mapping from a destination offset
// (dx, dy) to the source:
//
//	[ sx ]   [ A B ]   [ dx + H - X ]   [ X ]
//	[    ] = [     ] * [            ] + [   ]
//	[ sy ]   [ C D ]   [ dy + V - Y ]   [ Y ]
type Registers struct {
	H, V       float64 // scroll
	A, B, C, D float64 // linear map
	X, Y       float64 // transform origin
}

// ScanlineHook may rewrite the registers before each destination row is
// drawn. row is the offset of the row from the blit position; regs is a
// fresh copy of the base registers every time.
type ScanlineHook interface {
	Scanline(regs *Registers, row int)
}

type ScanlineFunc func(regs *Registers, row int)

func (f ScanlineFunc) Scanline(regs *Registers, row int) {
	f(regs, row)
}

type XForm struct {
	Registers
	Clamp ClampMode
	Hook  ScanlineHook
}

// NewXForm returns the identity transform.
func NewXForm(clamp ClampMode) XForm {
	return XForm{
		Registers: Registers{A: 1, D: 1},
		Clamp:     clamp,
	}
}

// maxCoord bounds the sampled coordinates converted to int; NaN, infinite
// or larger ones skip the pixel whatever the clamp mode.
const maxCoord = 1 << 52

// BlitXForm fills the clipping region, moved to pos, with src sampled
// through the transform registers.
func (c *Context) BlitXForm(src *Surface, pos image.Point, xf XForm) {
	sw, sh := src.Width, src.Height
	if sw <= 0 || sh <= 0 {
		return
	}

	dr, _, _ := Quad{
		X0: pos.X,
		Y0: pos.Y,
		X1: pos.X + (c.clip.X1 - c.clip.X0),
		Y1: pos.Y + (c.clip.Y1 - c.clip.Y0),
	}.clip(c.clip)
	if dr.Empty() {
		return
	}

	for y := dr.Y0; y <= dr.Y1; y++ {
		yc := y - pos.Y

		r := xf.Registers
		if xf.Hook != nil {
			xf.Hook.Scanline(&r, yc)
		}

		yi := float64(yc) + r.V - r.Y
		xo := r.B*yi + r.X
		yo := r.D*yi + r.Y

		drow := c.surface.Row(y)
		for x := dr.X0; x <= dr.X1; x++ {
			xi := float64(x-pos.X) + r.H - r.X

			xp := r.A*xi + xo
			yp := r.C*xi + yo
			if !(math.Abs(xp) < maxCoord && math.Abs(yp) < maxCoord) {
				continue
			}
			sx, sy := int(xp), int(yp)

			switch xf.Clamp {
			case ClampRepeat:
				sx = absInt(sx) % sw
				sy = absInt(sy) % sh
			case ClampEdge:
				sx = clampInt(sx, 0, sw-1)
				sy = clampInt(sy, 0, sh-1)
			default:
				if sx < 0 || sx >= sw || sy < 0 || sy >= sh {
					continue
				}
			}

			c.put(&drow[x], src.Data[sy*sw+sx])
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
