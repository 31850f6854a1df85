package palette

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var predefined = map[string][]uint32{
	"pico-8": {
		0x000000, 0x1D2B53, 0x7E2553, 0x008751, 0xAB5236, 0x5F574F, 0xC2C3C7, 0xFFF1E8,
		0xFF004D, 0xFFA300, 0xFFEC27, 0x00E436, 0x29ADFF, 0x83769C, 0xFF77A8, 0xFFCCAA,
	},
	"gameboy": {0x0F380F, 0x306230, 0x8BAC0F, 0x9BBC0F},
	"bw":      {0x000000, 0xFFFFFF},
	"gray16": {
		0x000000, 0x111111, 0x222222, 0x333333, 0x444444, 0x555555, 0x666666, 0x777777,
		0x888888, 0x999999, 0xAAAAAA, 0xBBBBBB, 0xCCCCCC, 0xDDDDDD, 0xEEEEEE, 0xFFFFFF,
	},
	"vga16": {
		0x000000, 0x0000AA, 0x00AA00, 0x00AAAA, 0xAA0000, 0xAA00AA, 0xAA5500, 0xAAAAAA,
		0x555555, 0x5555FF, 0x55FF55, 0x55FFFF, 0xFF5555, 0xFF55FF, 0xFFFF55, 0xFFFFFF,
	},
}

// Names lists the predefined palette ids, sorted.
func Names() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Find returns a fresh copy of a predefined palette.
func Find(id string) (Palette, error) {
	rgb, ok := predefined[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownPalette)
	}

	pal := make(Palette, len(rgb))
	for i, v := range rgb {
		pal[i] = color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
	}
	return pal, nil
}

// Load resolves a palette by predefined id first, then as a file: RIFF
// .pal files have all their palettes concatenated, anything else is read
// as a hex colour list.
func Load(name string) (Palette, error) {
	if pal, err := Find(name); err == nil {
		return pal, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read palette %q: %w", name, err)
	}

	if bytes.HasPrefix(data, riffType[:]) || strings.EqualFold(filepath.Ext(name), ".pal") {
		pals, err := ReadRIFF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("could not load palette %q: %w", name, err)
		}

		var colors []color.NRGBA
		for _, p := range pals {
			colors = append(colors, p...)
		}
		pal, err := New(colors...)
		if err != nil {
			return nil, fmt.Errorf("could not load palette %q: %w", name, err)
		}
		return pal, nil
	}

	pal, err := ParseList(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}
	return pal, nil
}
