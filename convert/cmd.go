// Package convert turns folders of true-colour pictures into indexed
// images, going through gl surfaces.
package convert

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"pixcon/gl"
	"pixcon/palette"
	"pixcon/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan        string `help:"Source folder to scan" default:"."`
	Dest        string `help:"Destination folder for indexed pictures. Relative to scan dir if not absolute" default:"indexed"`
	Resize      bool   `help:"Resize image" default:"false" group:"resize"`
	Width       int    `help:"Max width" group:"resize"`
	Height      int    `help:"Max height" group:"resize"`
	Crop        bool   `help:"Crop image to maintain requested aspect ratio" default:"false" group:"resize"`
	Fill        string `help:"If given and not cropping, will fill background with this color to maintain destination aspect ratio" group:"resize"`
	Filter      string `help:"Resampling filter" enum:"nearest,bilinear,catmullrom" default:"nearest" group:"resize"`
	Palette     string `help:"Palette name (${palettes}), RIFF PAL file or hex color list" default:"pico-8" group:"palette"`
	Dither      bool   `help:"Apply Floyd-Steinberg dithering" default:"false" group:"palette"`
	Transparent int    `help:"Index given to fully transparent pixels, negative to match them by color" default:"0" group:"palette"`
	CellWidth   int    `help:"Check the output splits into sheet cells of this width" group:"sheet"`
	CellHeight  int    `help:"Check the output splits into sheet cells of this height" group:"sheet"`
	Format      string `help:"Output format" enum:"png,gif,bmp,tiff" default:"png"`

	fillColor *color.NRGBA
	pal       palette.Palette
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		switch {
		case (c.Width < 0):
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case (c.Height < 0):
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case (c.Width == 0) && (c.Height == 0):
			return fmt.Errorf("no resize dimensions given")
		}
	}
	if _, ok := filters[c.Filter]; !ok {
		return fmt.Errorf("unknown resampling filter %q", c.Filter)
	}

	if (!c.Crop) && (c.Fill != "") {
		fill, err := palette.ParseColor(c.Fill)
		if err != nil {
			return fmt.Errorf("invalid fill color: %w", err)
		}
		c.fillColor = &fill
	}

	if c.pal, err = palette.Load(c.Palette); err != nil {
		return err
	}
	if len(c.pal) == 0 {
		return fmt.Errorf("palette %q has no colors", c.Palette)
	}
	if c.Transparent >= gl.MaxPaletteColors {
		return fmt.Errorf("invalid transparent index: %d", c.Transparent)
	}

	if (c.CellWidth < 0) || (c.CellHeight < 0) || ((c.CellWidth == 0) != (c.CellHeight == 0)) {
		return fmt.Errorf("invalid sheet cell size: %dx%d", c.CellWidth, c.CellHeight)
	}

	return nil
}

func (c *CLICmd) quantizer() gl.Quantizer {
	if c.Dither {
		return gl.DitherQuantizer{
			Palette:     c.pal,
			Transparent: gl.Pixel(max(c.Transparent, 0)),
			Opaque:      c.Transparent < 0,
		}
	}
	return gl.NearestQuantizer{
		Palette:     c.pal,
		Transparent: gl.Pixel(max(c.Transparent, 0)),
		Opaque:      c.Transparent < 0,
	}
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))
				if err := c.convert(logger, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not convert image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) convert(logger *slog.Logger, fileName string) error {
	imgFile, err := os.Open(filepath.Join(c.Scan, fileName))
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	img, imgType, err := image.Decode(imgFile)
	if closeErr := imgFile.Close(); closeErr != nil {
		logger.Warn("could not close image", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}
	logger = logger.With("type", imgType)

	if c.Resize {
		img = resize(logger, img, c.Width, c.Height, c.Crop, c.fillColor, filters[c.Filter])
	}

	surface, err := gl.NewSurfaceFromImage(img, c.quantizer())
	if err != nil {
		return fmt.Errorf("could not index image: %w", err)
	}
	logger.Info("indexed", "palette", c.Palette, "colors", len(c.pal), "width", surface.Width, "height", surface.Height)

	if c.CellWidth > 0 {
		sheet, err := gl.NewSheet(surface, c.CellWidth, c.CellHeight)
		if err != nil {
			return err
		}
		if sheet.Len() == 0 {
			return fmt.Errorf("image smaller than a %dx%d cell", c.CellWidth, c.CellHeight)
		}
		if surface.Width%c.CellWidth != 0 || surface.Height%c.CellHeight != 0 {
			logger.Warn("partial cells dropped", "cells", sheet.Len())
		}
	}

	if err = save(surface.Paletted(c.pal), c.Format, c.Dest, fileName); err != nil {
		return fmt.Errorf("could not save image in %q: %w", c.Dest, err)
	}
	return nil
}
