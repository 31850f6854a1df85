package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"pixcon/font"
	"pixcon/gl"
	"pixcon/palette"
	"pixcon/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Output     string `help:"Screenshot file; numbered when rendering several frames" default:"scene.png" type:"path"`
	Width      int    `help:"Screen width" default:"320"`
	Height     int    `help:"Screen height" default:"200"`
	Palette    string `help:"Palette name (${palettes}), RIFF PAL file or hex color list" default:"pico-8"`
	Sheet      string `help:"Sprite sheet picture, a built-in one is drawn when not given" type:"existingfile" group:"sheet"`
	CellWidth  int    `help:"Sprite sheet cell width" default:"16" group:"sheet"`
	CellHeight int    `help:"Sprite sheet cell height" default:"16" group:"sheet"`
	Frame      int    `help:"First frame to render" default:"0"`
	Frames     int    `help:"Number of frames to render" default:"1"`

	pal palette.Palette
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.Width, c.Height)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("invalid sheet cell size: %dx%d", c.CellWidth, c.CellHeight)
	}
	if c.Frames < 1 {
		return fmt.Errorf("invalid frame count: %d", c.Frames)
	}

	var err error
	if c.pal, err = palette.Load(c.Palette); err != nil {
		return err
	}
	if len(c.pal) == 0 {
		return fmt.Errorf("palette %q has no colors", c.Palette)
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	sheet := BuiltinSheet()
	if c.Sheet != "" {
		var err error
		sheet, err = gl.LoadSheet(c.Sheet, c.CellWidth, c.CellHeight, gl.NearestQuantizer{Palette: c.pal})
		if err != nil {
			return fmt.Errorf("could not load sprite sheet %q: %w", c.Sheet, err)
		}
		if sheet.Len() == 0 {
			return fmt.Errorf("sprite sheet %q holds no %dx%d cell", c.Sheet, c.CellWidth, c.CellHeight)
		}
	}
	defer sheet.Release()

	fnt, err := font.Default(black, white)
	if err != nil {
		return err
	}
	defer fnt.Release()

	var errCount atomic.Uint64
	for frame := c.Frame; frame < c.Frame+c.Frames; frame++ {
		worker(func() {
			path := c.framePath(frame)
			logger := slog.Default().With("frame", frame, "file", path)
			if err := c.render(sheet, fnt, frame, path); err != nil {
				errCount.Add(1)
				logger.Error("could not render frame", "error", err)
				return
			}
			logger.Info("rendered")
		})
	}
	wait(true)

	if n := errCount.Load(); n > 0 {
		return fmt.Errorf("error rendering %d frames", n)
	}
	return nil
}

// render draws one frame on a context of its own; sheet and fnt are only
// read and may be shared.
func (c *CLICmd) render(sheet *gl.Sheet, fnt *font.Font, frame int, path string) error {
	ctx, err := gl.NewContext(c.Width, c.Height)
	if err != nil {
		return err
	}
	defer ctx.Release()

	Render(ctx, sheet, fnt, frame)
	return ctx.Screenshot(c.pal, path)
}

func (c *CLICmd) framePath(frame int) string {
	if c.Frames == 1 {
		return c.Output
	}
	ext := filepath.Ext(c.Output)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(c.Output, ext), frame, ext)
}
