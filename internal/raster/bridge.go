package raster

import (
	"image"
	"image/color"

	"github.com/ironsheep/rasterkit/internal/pixel"
)

// ToImage materializes the buffer as a standard library image. Bit and L
// images become *image.Gray (bit pixels map to 0/255); RGB and RGBA become
// *image.NRGBA with straight alpha. This is the seam through which codecs
// and library-backed operations see the engine's pixels.
func (im *Image) ToImage() image.Image {
	switch im.mode {
	case pixel.ModeBit, pixel.ModeLuma:
		out := image.NewGray(image.Rect(0, 0, im.width, im.height))
		for i, p := range im.pix {
			out.Pix[i] = p.Luma().Value
		}
		return out
	default:
		return im.toNRGBA()
	}
}

func (im *Image) toNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.width, im.height))
	for i, p := range im.pix {
		c := p.RGBA()
		out.Pix[i*4+0] = c.R
		out.Pix[i*4+1] = c.G
		out.Pix[i*4+2] = c.B
		out.Pix[i*4+3] = c.A
	}
	return out
}

// FromImage converts a standard library image into an engine image. The
// pixel mode follows the source color model the way decoders surface it:
// grayscale stays L, opaque color becomes RGB, color with transparency
// becomes RGBA.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return Empty()
	}

	switch g := src.(type) {
	case *image.Gray:
		pix := make([]pixel.Pixel, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = pixel.FromLuma(g.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return &Image{width: w, height: h, pix: pix, mode: pixel.ModeLuma}
	case *image.Gray16:
		pix := make([]pixel.Pixel, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := g.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y
				pix[y*w+x] = pixel.FromLuma(uint8(v >> 8))
			}
		}
		return &Image{width: w, height: h, pix: pix, mode: pixel.ModeLuma}
	}

	mode := pixel.ModeRGBA
	if opaque(src) {
		mode = pixel.ModeRGB
	}

	pix := make([]pixel.Pixel, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if mode == pixel.ModeRGB {
				pix[y*w+x] = pixel.FromRGB(c.R, c.G, c.B)
			} else {
				pix[y*w+x] = pixel.FromRGBA(c.R, c.G, c.B, c.A)
			}
		}
	}
	return &Image{width: w, height: h, pix: pix, mode: mode}
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// replaceFrom swaps in a new buffer converted from a standard library image
// while preserving the image's pixel mode, overlay mode and format tag.
func (im *Image) replaceFrom(src image.Image) {
	next := FromImage(src)
	next.Convert(im.mode)
	im.width = next.width
	im.height = next.height
	im.pix = next.pix
}
