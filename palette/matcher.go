package palette

import (
	"image/color"
	"math"

	"pixcon/okcolor"
)

// Matcher finds nearest palette entries in Oklab space. Conversions of the
// palette are done once and lookups are memoised, so a Matcher is meant to
// live for a whole image. It is not safe for concurrent use.
type Matcher struct {
	pal   Palette
	lab   []okcolor.Lab
	cache map[color.NRGBA]int
}

func NewMatcher(p Palette) *Matcher {
	lab := make([]okcolor.Lab, len(p))
	for i, c := range p {
		lab[i] = okcolor.FromNRGBA8(c)
	}
	return &Matcher{
		pal:   p,
		lab:   lab,
		cache: make(map[color.NRGBA]int),
	}
}

// Palette returns the palette being matched against.
func (m *Matcher) Palette() Palette {
	return m.pal
}

// Index returns the index of the closest entry; ties resolve to the lowest
// index. An empty palette always yields 0.
func (m *Matcher) Index(c color.NRGBA) int {
	if i, ok := m.cache[c]; ok {
		return i
	}

	lc := okcolor.FromNRGBA8(c)
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range m.lab {
		sum := okcolor.Distance(lc, v)
		if sum < bestSum {
			ret, bestSum = i, sum
			if sum == 0 {
				break
			}
		}
	}

	m.cache[c] = ret
	return ret
}

// Convert returns the closest palette colour.
func (m *Matcher) Convert(c color.NRGBA) color.NRGBA {
	return m.pal.At(m.Index(c))
}
