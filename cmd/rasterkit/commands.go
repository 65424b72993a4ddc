package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ironsheep/rasterkit/internal/codec"
	"github.com/ironsheep/rasterkit/internal/pixel"
	"github.com/ironsheep/rasterkit/internal/raster"
)

type ioArgs struct {
	Input  string `arg:"" help:"Input image file." type:"existingfile"`
	Output string `arg:"" optional:"" help:"Output image file. Defaults to overwriting the input."`
	Format string `help:"Output format (png, jpeg, gif, bmp, tiff). Inferred from the output extension when omitted."`
}

func (a *ioArgs) load(logger *slog.Logger) (*raster.Image, error) {
	im, err := codec.Open(a.Input)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded image",
		"path", a.Input,
		"mode", im.Mode().String(),
		"width", im.Width(),
		"height", im.Height(),
		"format", im.Format(),
	)
	return im, nil
}

func (a *ioArgs) store(logger *slog.Logger, im *raster.Image) error {
	out := a.Output
	if out == "" {
		out = a.Input
	}
	if err := codec.Save(im, out, codec.Format(a.Format)); err != nil {
		return err
	}
	logger.Info("saved image", "path", out, "format", im.Format(), "width", im.Width(), "height", im.Height())
	return nil
}

type infoCmd struct {
	Input  string `arg:"" help:"Input image file." type:"existingfile"`
	Colors int    `help:"Number of dominant colors to report." default:"5"`
}

func (c *infoCmd) Run(logger *slog.Logger) error {
	im, err := codec.Open(c.Input)
	if err != nil {
		return err
	}

	fmt.Printf("path:    %s\n", c.Input)
	fmt.Printf("format:  %s\n", im.Format())
	fmt.Printf("mode:    %s\n", im.Mode())
	fmt.Printf("size:    %dx%d (%d pixels)\n", im.Width(), im.Height(), im.Len())
	fmt.Printf("overlay: %s\n", im.OverlayMode())
	fmt.Printf("average: %s\n", im.AverageColor())

	for i, cc := range im.DominantColors(c.Colors) {
		fmt.Printf("color %d: %s %s (%.1f%%)\n", i+1, cc.Hex, cc.Color, cc.Fraction*100)
	}
	return nil
}

type convertCmd struct {
	ioArgs
	Mode string `help:"Target pixel mode (bitpixel, L, RGB, RGBA)."`
}

func (c *convertCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	if c.Mode != "" {
		found := false
		for _, m := range []pixel.Mode{pixel.ModeBit, pixel.ModeLuma, pixel.ModeRGB, pixel.ModeRGBA} {
			if m.String() == c.Mode {
				im.Convert(m)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown pixel mode %q", c.Mode)
		}
	}
	return c.store(logger, im)
}

type resizeCmd struct {
	ioArgs
	Width     int    `required:"" help:"Target width in pixels."`
	Height    int    `required:"" help:"Target height in pixels."`
	Algorithm string `help:"Resampling kernel." enum:"nearest,box,bilinear,bicubic,mitchell,lanczos" default:"lanczos"`
}

func (c *resizeCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	logger.Debug("resizing", "width", c.Width, "height", c.Height, "algorithm", c.Algorithm)
	im.Resize(c.Width, c.Height, raster.ParseResizeAlgorithm(c.Algorithm))
	return c.store(logger, im)
}

type cropCmd struct {
	ioArgs
	X1 int `required:"" help:"Left edge (inclusive)."`
	Y1 int `required:"" help:"Top edge (inclusive)."`
	X2 int `required:"" help:"Right edge (exclusive)."`
	Y2 int `required:"" help:"Bottom edge (exclusive)."`
}

func (c *cropCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	im.Crop(c.X1, c.Y1, c.X2, c.Y2)
	if im.IsEmpty() {
		return fmt.Errorf("crop rectangle (%d,%d)-(%d,%d) selects no pixels", c.X1, c.Y1, c.X2, c.Y2)
	}
	return c.store(logger, im)
}

type rotateCmd struct {
	ioArgs
	Angle float64 `required:"" help:"Clockwise rotation in degrees. Quarter turns are lossless."`
}

func (c *rotateCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	im.Rotate(c.Angle)
	return c.store(logger, im)
}

type flipCmd struct{ ioArgs }

func (c *flipCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	im.Flip()
	return c.store(logger, im)
}

type mirrorCmd struct{ ioArgs }

func (c *mirrorCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	im.Mirror()
	return c.store(logger, im)
}

type invertCmd struct{ ioArgs }

func (c *invertCmd) Run(logger *slog.Logger) error {
	im, err := c.load(logger)
	if err != nil {
		return err
	}
	im.Invert()
	return c.store(logger, im)
}

type pasteCmd struct {
	Input   string `arg:"" help:"Base image file." type:"existingfile"`
	Overlay string `arg:"" help:"Image to paste on top." type:"existingfile"`
	Output  string `required:"" short:"o" help:"Output image file."`
	X       int    `help:"Horizontal offset of the overlay." default:"0"`
	Y       int    `help:"Vertical offset of the overlay." default:"0"`
	Mask    string `help:"Optional bit-mask image gating the paste." type:"existingfile"`
	Merge   bool   `help:"Alpha-blend instead of replacing pixels."`
}

func (c *pasteCmd) Run(logger *slog.Logger) error {
	im, err := codec.Open(c.Input)
	if err != nil {
		return err
	}
	overlay, err := codec.Open(c.Overlay)
	if err != nil {
		return err
	}
	if c.Merge {
		im.SetOverlayMode(raster.OverlayMerge)
	}

	if c.Mask != "" {
		mask, err := codec.Open(c.Mask)
		if err != nil {
			return err
		}
		// decoded masks usually arrive as grayscale; threshold to bits
		mask.Convert(pixel.ModeBit)
		if err := im.PasteWithMask(c.X, c.Y, overlay, mask); err != nil {
			return err
		}
	} else {
		im.Paste(c.X, c.Y, overlay)
	}

	if err := codec.Save(im, c.Output, ""); err != nil {
		return err
	}
	logger.Info("saved image", "path", c.Output, "format", im.Format())
	return nil
}

type splitCmd struct {
	Input string `arg:"" help:"Input color image." type:"existingfile"`
	Dir   string `help:"Destination directory for the band files." default:"."`
}

func (c *splitCmd) Run(logger *slog.Logger) error {
	im, err := codec.Open(c.Input)
	if err != nil {
		return err
	}

	bands, err := im.Bands()
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))
	names := []string{"r", "g", "b", "a"}
	for i, band := range bands {
		path := filepath.Join(c.Dir, fmt.Sprintf("%s_%s.png", base, names[i]))
		if err := codec.Save(band, path, codec.FormatPNG); err != nil {
			return err
		}
		logger.Info("wrote band", "channel", names[i], "path", path)
	}
	return nil
}

type joinCmd struct {
	Bands  []string `arg:"" help:"3 or 4 grayscale band files (R G B [A] order)." type:"existingfile"`
	Output string   `required:"" short:"o" help:"Output image file."`
}

func (c *joinCmd) Run(logger *slog.Logger) error {
	if len(c.Bands) != 3 && len(c.Bands) != 4 {
		return fmt.Errorf("expected 3 or 4 band files, got %d", len(c.Bands))
	}

	bands := make([]*raster.Image, len(c.Bands))
	for i, path := range c.Bands {
		band, err := codec.Open(path)
		if err != nil {
			return err
		}
		band.Convert(pixel.ModeLuma)
		bands[i] = band
	}

	im, err := raster.FromBands(bands...)
	if err != nil {
		return err
	}
	logger.Info("joined bands", "count", len(bands), "mode", im.Mode().String())
	return codec.Save(im, c.Output, "")
}
