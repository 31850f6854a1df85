// Package scene renders a demo frame that goes through every drawing
// primitive of gl.
package scene

import (
	"image"
	"math"

	"pixcon/font"
	"pixcon/gl"
)

// pico-8 indices used by the built-in assets.
const (
	black    gl.Pixel = 0
	darkBlue gl.Pixel = 1
	darkGray gl.Pixel = 5
	white    gl.Pixel = 7
	red      gl.Pixel = 8
	orange   gl.Pixel = 9
	yellow   gl.Pixel = 10
	green    gl.Pixel = 11
	blue     gl.Pixel = 12
	pink     gl.Pixel = 14
)

// BuiltinSheet returns a two cell 16x16 sheet: a ringed ball and a floor
// tile.
func BuiltinSheet() *gl.Sheet {
	atlas, _ := gl.NewSurface(32, 16) // constant size

	for y := range 16 {
		for x := range 16 {
			dx, dy := float64(x)-7.5, float64(y)-7.5
			switch d := math.Hypot(dx, dy); {
			case d < 3:
				atlas.Set(x, y, yellow)
			case d < 5:
				atlas.Set(x, y, red)
			case d < 7.5:
				atlas.Set(x, y, orange)
			}

			tile := green
			if (x/4+y/4)%2 == 1 {
				tile = darkGray
			}
			atlas.Set(16+x, y, tile)
		}
	}

	sheet, _ := gl.NewSheet(atlas, 16, 16)
	return sheet
}

// Render draws frame number frame of the demo on ctx. Cell 0 of sheet is
// used as the sprite and the last cell as the floor texture.
func Render(ctx *gl.Context, sheet *gl.Sheet, fnt *font.Font, frame int) {
	w, h := ctx.Width(), ctx.Height()
	horizon := h / 2
	t := float64(frame)

	ctx.Background(blue)
	ctx.Clear()

	// Sun, half-toned.
	ctx.Color(yellow)
	ctx.Pattern(gl.PatternChecker)
	ctx.FillRect(gl.Rect(w-48, 8, 32, 24))
	ctx.Pattern(gl.PatternSolid)

	// Mode-7 floor below the horizon.
	ctx.Push()
	ctx.Clipping(&gl.Quad{X0: 0, Y0: horizon, X1: w - 1, Y1: h - 1})
	tile := cellSurface(sheet, sheet.Len()-1)
	floor := gl.NewXForm(gl.ClampRepeat)
	floor.Hook = gl.ScanlineFunc(func(r *gl.Registers, row int) {
		z := 32 / float64(row+1) // distance of the scanline from the camera
		r.A = z / 4
		r.X = float64(w) / 2
		r.H = t
		r.C, r.D = 0, 0
		r.Y = z*8 + t*2
	})
	ctx.BlitXForm(tile, image.Point{X: 0, Y: horizon}, floor)
	ctx.Pop()

	ctx.Color(white)
	ctx.HLine(image.Point{X: 0, Y: horizon}, w)

	// A framed panel, flood filled from inside.
	ctx.Color(darkBlue)
	ctx.HLine(image.Point{X: 8, Y: 8}, 40)
	ctx.HLine(image.Point{X: 8, Y: 32}, 40)
	ctx.VLine(image.Point{X: 8, Y: 8}, 25)
	ctx.VLine(image.Point{X: 47, Y: 8}, 25)
	ctx.Fill(image.Point{X: 20, Y: 20}, pink)

	sprite := sheet.Cell(0)
	atlas := sheet.Atlas

	// Colour cycling: the ring steps through red, orange, yellow, green.
	ctx.Shifting([]gl.Pixel{red}, []gl.Pixel{red + gl.Pixel(frame%4)})
	ctx.Blit(atlas, sprite, image.Point{X: 60, Y: 12})
	ctx.Shifting(nil, nil)

	ctx.BlitScaled(atlas, sprite, image.Point{X: 84, Y: 4}, 2, 2)
	ctx.BlitScaled(atlas, sprite, image.Point{X: 124, Y: 12}, -1, 1)

	angle := t * math.Pi / 16
	ctx.BlitRotated(atlas, sprite, image.Point{X: w / 2, Y: horizon + h/4}, 2, 2, angle, 0.5, 0.5)

	if fnt != nil {
		fnt.Write(ctx, "pixcon", image.Point{X: w / 2, Y: h - 18}, font.Center)
		fnt.WriteScaled(ctx, "7", image.Point{X: w - 8, Y: horizon + 4}, 1, 2, font.Right)
	}
}

// cellSurface copies cell i of sheet into a surface of its own so that it
// can be tiled.
func cellSurface(sheet *gl.Sheet, i int) *gl.Surface {
	cell := sheet.Cell(i)
	dst := &gl.Surface{Width: cell.Width, Height: cell.Height, Data: make([]gl.Pixel, cell.Width*cell.Height)}
	for y := range cell.Height {
		copy(dst.Row(y), sheet.Atlas.Row(cell.Y + y)[cell.X:cell.X+cell.Width])
	}
	return dst
}
