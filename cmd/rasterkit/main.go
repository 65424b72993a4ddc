package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type cli struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Info    infoCmd    `cmd:"" help:"Print image metadata and color statistics."`
	Convert convertCmd `cmd:"" help:"Re-encode an image into another container format or pixel mode."`
	Resize  resizeCmd  `cmd:"" help:"Resize an image with a selectable resampling kernel."`
	Crop    cropCmd    `cmd:"" help:"Crop an image to a rectangle."`
	Rotate  rotateCmd  `cmd:"" help:"Rotate an image clockwise by the given angle."`
	Flip    flipCmd    `cmd:"" help:"Reverse the row order (top-bottom)."`
	Mirror  mirrorCmd  `cmd:"" help:"Reverse the column order (left-right)."`
	Invert  invertCmd  `cmd:"" help:"Invert the image per channel."`
	Paste   pasteCmd   `cmd:"" help:"Paste one image onto another."`
	Split   splitCmd   `cmd:"" help:"Split a color image into per-channel grayscale files."`
	Join    joinCmd    `cmd:"" help:"Join 3 or 4 grayscale band files into a color image."`

	Version kong.VersionFlag `help:"Print version information."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("rasterkit"),
		kong.Description("In-memory raster image engine: crop, resize, composite, split and re-encode images."),
		kong.Vars{"version": Version + " (" + GitCommit + ")"},
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	kctx.FatalIfErrorf(kctx.Run(logger))
}
