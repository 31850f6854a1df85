package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pixcon/convert"
	"pixcon/gl"
	"pixcon/palette"
	"pixcon/parallel"
	"pixcon/scene"

	"github.com/alecthomas/kong"
)

type constantsCmd struct{}

func (constantsCmd) Run(out io.Writer) error {
	for _, c := range gl.Constants() {
		if _, err := fmt.Fprintf(out, "%s = %s\n", c.Name, c.Value); err != nil {
			return err
		}
	}
	return nil
}

type cli struct {
	Workers  int    `help:"Parallel workers, 0 for one per CPU" default:"0"`
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`

	Convert   convert.CLICmd `cmd:"" help:"Convert a folder of pictures to indexed images"`
	Render    scene.CLICmd   `cmd:"" help:"Render the demo scene to PNG screenshots"`
	Palette   palette.CLICmd `cmd:"" help:"List, show and export palettes"`
	Constants constantsCmd   `cmd:"" help:"Print the engine constants"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixcon"),
		kong.Description("Indexed colour rasterizer tools"),
		kong.UsageOnError(),
		kong.Vars{"palettes": strings.Join(palette.Names(), ", ")},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	var level slog.Level
	_ = level.UnmarshalText([]byte(c.LogLevel)) // enum checked by kong
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gl.SetLogger(logger.With("pkg", "gl"))

	pool := parallel.Start(c.Workers)
	defer pool.Cancel()
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(kctx.Selected().Name, pool.Do, pool.Wait)
	kctx.FatalIfErrorf(err)
}
