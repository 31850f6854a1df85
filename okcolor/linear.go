package okcolor

import (
	"image/color"
	"math"
)

// LinearRGBA is a colour with gamma-decoded sRGB channels in [0, 1].
type LinearRGBA struct {
	R float64
	G float64
	B float64
	A uint16
}

var LinearRGBAModel = color.ModelFunc(linearRGBAConvert)

func linearRGBAConvert(c color.Color) color.Color {
	if _, ok := c.(LinearRGBA); ok {
		return c
	}

	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// FromNRGBA decodes an 8-bit straight-alpha colour without going through
// the premultiplied color.Color path, which would lose the channels of
// translucent pixels.
func FromNRGBA(c color.NRGBA) LinearRGBA {
	return LinearRGBA{
		R: srgbTable[c.R],
		G: srgbTable[c.G],
		B: srgbTable[c.B],
		A: uint16(c.A) * 0x101,
	}
}

func (lc LinearRGBA) RGBA() (uint32, uint32, uint32, uint32) {
	return lc.NRGBA().RGBA()
}

// NRGBA encodes the colour back to 8-bit sRGB, clamping out-of-gamut
// channels.
func (lc LinearRGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: encode8(lc.R),
		G: encode8(lc.G),
		B: encode8(lc.B),
		A: uint8(lc.A >> 8),
	}
}

func encode8(x float64) uint8 {
	v := fromLinear(clamp(x, 0, 1))*255 + 0.5
	return uint8(v)
}

// srgbTable maps every 8-bit sRGB value to its linear intensity.
var srgbTable = func() (t [256]float64) {
	for i := range t {
		t[i] = toLinear(float64(i) / 255)
	}
	return t
}()

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, pow)*1.055 - 0.055
	}
	return x * 12.92
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
