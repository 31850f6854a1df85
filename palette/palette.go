// Package palette holds the ordered colour tables an indexed surface is
// presented through.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// MaxColors bounds the number of entries in a palette; pixel indices are
// a single byte.
const MaxColors = 256

var (
	ErrTooManyColors  = errors.New("too many colors")
	ErrUnknownPalette = errors.New("unknown palette")
)

// Palette is an ordered list of straight-alpha colours, at most MaxColors
// long.
type Palette []color.NRGBA

func New(colors ...color.NRGBA) (Palette, error) {
	if len(colors) > MaxColors {
		return nil, fmt.Errorf("palette of %d entries: %w", len(colors), ErrTooManyColors)
	}
	return append(Palette(nil), colors...), nil
}

// FromColors converts a standard library palette.
func FromColors(p color.Palette) (Palette, error) {
	colors := make([]color.NRGBA, len(p))
	for i, c := range p {
		colors[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return New(colors...)
}

// At returns the colour stored at index i, or the zero (fully transparent)
// colour when the index is past the end of the palette.
func (p Palette) At(i int) color.NRGBA {
	if i < 0 || i >= len(p) {
		return color.NRGBA{}
	}
	return p[i]
}

// Colors returns the palette as a color.Palette padded to MaxColors, so
// that any byte index is valid in an image.Paletted built on it.
func (p Palette) Colors() color.Palette {
	pal := make(color.Palette, MaxColors)
	for i := range pal {
		pal[i] = p.At(i)
	}
	return pal
}

// Nearest returns the index of the entry perceptually closest to c.
func (p Palette) Nearest(c color.NRGBA) int {
	return NewMatcher(p).Index(c)
}

// ParseColor reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA notation.
func ParseColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q, should start with '#'", s)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return color.NRGBA{}, fmt.Errorf("invalid color %q, non hex digit %q", s, r)
		}
	}

	c := color.NRGBA{A: 0xFF}
	var err error
	switch len(s) {
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 5:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("could not read color %q: %w", s, err)
	}

	return c, nil
}

// FormatColor is the inverse of ParseColor; opaque colours drop the
// alpha pair.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ParseList reads one colour per line. Blank lines and lines starting
// with ';' are skipped.
func ParseList(r io.Reader) (Palette, error) {
	var colors []color.NRGBA
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}

		c, err := ParseColor(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		colors = append(colors, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read color list: %w", err)
	}

	return New(colors...)
}

// FormatList writes the palette in the form ParseList reads.
func FormatList(w io.Writer, p Palette) error {
	for i, c := range p {
		if _, err := fmt.Fprintln(w, FormatColor(c)); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, len(p), err)
		}
	}
	return nil
}
