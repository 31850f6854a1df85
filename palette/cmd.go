package palette

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	List struct{} `cmd:"" help:"List predefined palettes"`
	Show struct {
		Name string `arg:"" help:"Palette id, RIFF PAL file or hex color list"`
	} `cmd:"" help:"Print palette colors, one per line"`
	Export struct {
		Name   string `arg:"" help:"Palette id, RIFF PAL file or hex color list"`
		Output string `arg:"" help:"Destination file" type:"path"`
		Format string `help:"Output format. 'auto' picks riff for .pal destinations" enum:"auto,riff,hex" default:"auto"`
	} `cmd:"" help:"Write a palette to a file"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if kctx.Selected() == nil || kctx.Selected().Name != "export" {
		return nil
	}

	if c.Export.Format == "auto" {
		c.Export.Format = "hex"
		if strings.EqualFold(filepath.Ext(c.Export.Output), ".pal") {
			c.Export.Format = "riff"
		}
	}
	return nil
}

func (c *CLICmd) Run(subCmd string, out io.Writer) error {
	switch subCmd {
	case "list":
		for _, name := range Names() {
			pal, _ := Find(name)
			if _, err := fmt.Fprintf(out, "%-8s %3d colors\n", name, len(pal)); err != nil {
				return err
			}
		}
	case "show":
		pal, err := Load(c.Show.Name)
		if err != nil {
			return err
		}
		return FormatList(out, pal)
	case "export":
		pal, err := Load(c.Export.Name)
		if err != nil {
			return err
		}
		return export(pal, c.Export.Output, c.Export.Format)
	default:
		return fmt.Errorf("unsupported palette operation: %s", subCmd)
	}
	return nil
}

func export(pal Palette, dest, format string) (err error) {
	outFile, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", dest, err)
	}
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close palette file %q: %w", dest, defErr)
		}
	}()

	logger := slog.Default().With("file", dest, "format", format)
	switch format {
	case "riff":
		n, err := WriteRIFF(outFile, pal)
		if err != nil {
			return fmt.Errorf("could not write palette file %q: %w", dest, err)
		}
		logger.Info("palette exported", "colors", len(pal), "bytes", n)
	default:
		if err := FormatList(outFile, pal); err != nil {
			return fmt.Errorf("could not write palette file %q: %w", dest, err)
		}
		logger.Info("palette exported", "colors", len(pal))
	}

	return nil
}
