package convert

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

var filters = map[string]draw.Interpolator{
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.ApproxBiLinear,
	"catmullrom": draw.CatmullRom,
}

// fit works out the geometry of a resize to at most width×height (0 keeps
// that dimension). It returns the part of src to sample, the output canvas
// and where the sample lands on the canvas. With crop the source is trimmed
// to the destination aspect ratio; otherwise the image is letterboxed when
// pad is set, or the canvas shrinks to the scaled image.
func fit(src image.Rectangle, width, height int, crop, pad bool) (sr, canvas, dr image.Rectangle) {
	sw, sh := float64(src.Dx()), float64(src.Dy())

	dw, dh := float64(width), float64(height)
	switch {
	case dw == 0 && dh == 0:
		dw, dh = sw, sh
	case dw == 0:
		dw = math.Round(dh * sw / sh)
	case dh == 0:
		dh = math.Round(dw * sh / sw)
	}

	sr = src
	canvas = image.Rect(0, 0, int(dw), int(dh))
	dr = canvas

	srcAR, destAR := sw/sh, dw/dh
	switch {
	case srcAR == destAR:
	case crop && srcAR < destAR:
		d := int(math.Round((sh - sw/destAR) / 2))
		sr.Min.Y += d
		sr.Max.Y -= d
	case crop:
		d := int(math.Round((sw - sh*destAR) / 2))
		sr.Min.X += d
		sr.Max.X -= d
	case srcAR < destAR:
		w := int(math.Round(dh * srcAR))
		if pad {
			d := (int(dw) - w) / 2
			dr.Min.X += d
			dr.Max.X = dr.Min.X + w
		} else {
			canvas.Max.X = w
			dr = canvas
		}
	default:
		h := int(math.Round(dw / srcAR))
		if pad {
			d := (int(dh) - h) / 2
			dr.Min.Y += d
			dr.Max.Y = dr.Min.Y + h
		} else {
			canvas.Max.Y = h
			dr = canvas
		}
	}

	return sr, canvas, dr
}

func resize(logger *slog.Logger, img image.Image, width, height int, crop bool, fillColor *color.NRGBA, filter draw.Interpolator) image.Image {
	sr, canvas, dr := fit(img.Bounds(), width, height, crop, fillColor != nil)
	if sr == img.Bounds() && canvas.Size() == sr.Size() {
		return img
	}

	logger.Info("resizing", "width", dr.Dx(), "height", dr.Dy(), "canvas", canvas.Size())
	dest := image.NewNRGBA(canvas)
	if fillColor != nil && dr != canvas {
		draw.Draw(dest, canvas, image.NewUniform(*fillColor), image.Point{}, draw.Src)
	}
	filter.Scale(dest, dr, img, sr, draw.Over, nil)

	return dest
}
