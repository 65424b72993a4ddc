package raster

import (
	"github.com/ironsheep/rasterkit/internal/pixel"
)

// Bands decomposes a color image into single-channel L images, one per
// channel: 3 for RGB, 4 for RGBA (the last being the alpha channel). Each
// band has the same dimensions as the source. Any other mode reports an
// UnexpectedFormatError.
func (im *Image) Bands() ([]*Image, error) {
	var n int
	switch im.mode {
	case pixel.ModeRGB:
		n = 3
	case pixel.ModeRGBA:
		n = 4
	default:
		return nil, &UnexpectedFormatError{Expected: "Rgb or Rgba", Got: im.mode.String()}
	}

	bands := make([]*Image, n)
	for i := range bands {
		bands[i] = &Image{
			width:  im.width,
			height: im.height,
			pix:    make([]pixel.Pixel, len(im.pix)),
			mode:   pixel.ModeLuma,
		}
	}

	for i, p := range im.pix {
		c := p.RGBA()
		bands[0].pix[i] = pixel.FromLuma(c.R)
		bands[1].pix[i] = pixel.FromLuma(c.G)
		bands[2].pix[i] = pixel.FromLuma(c.B)
		if n == 4 {
			bands[3].pix[i] = pixel.FromLuma(c.A)
		}
	}

	return bands, nil
}

// Paste composites src onto this image with its top-left corner at (x, y).
// Source pixels landing outside the destination are silently clipped; the
// offset may be negative. Under OverlayReplace source pixels overwrite the
// destination (converted to its mode); under OverlayMerge a source that
// carries alpha is blended with the source-over rule instead.
func (im *Image) Paste(x, y int, src *Image) {
	im.pasteRegion(x, y, src, nil)
}

// PasteWithMask behaves like Paste but writes a source pixel only where the
// corresponding mask pixel is on. The mask must be in bitpixel mode and must
// have the same dimensions as src.
func (im *Image) PasteWithMask(x, y int, src, mask *Image) error {
	if mask.mode != pixel.ModeBit {
		return &UnexpectedFormatError{Expected: "bitpixel", Got: mask.mode.String()}
	}
	if mask.width != src.width || mask.height != src.height {
		return &DimensionMismatchError{
			WantWidth: src.width, WantHeight: src.height,
			GotWidth: mask.width, GotHeight: mask.height,
		}
	}
	im.pasteRegion(x, y, src, mask)
	return nil
}

func (im *Image) pasteRegion(x, y int, src *Image, mask *Image) {
	// Overlap of the destination with the pasted rectangle.
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+src.width, im.width), min(y+src.height, im.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	merge := im.overlay == OverlayMerge && src.mode.HasAlpha()

	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			si := (dy-y)*src.width + (dx - x)
			if mask != nil && !mask.pix[si].Bit().Value {
				continue
			}
			di := dy*im.width + dx
			if merge {
				im.pix[di] = pixel.Blend(im.pix[di], src.pix[si])
			} else {
				im.pix[di] = src.pix[si].Convert(im.mode)
			}
		}
	}
}

// MaskAlpha replaces the alpha channel of every pixel with the corresponding
// grayscale value from mask. The image must be in RGBA mode, the mask in L
// mode, and their dimensions must match.
func (im *Image) MaskAlpha(mask *Image) error {
	if im.mode != pixel.ModeRGBA {
		return &UnexpectedFormatError{Expected: "RGBA", Got: im.mode.String()}
	}
	if mask.mode != pixel.ModeLuma {
		return &UnexpectedFormatError{Expected: "L", Got: mask.mode.String()}
	}
	if mask.width != im.width || mask.height != im.height {
		return &DimensionMismatchError{
			WantWidth: im.width, WantHeight: im.height,
			GotWidth: mask.width, GotHeight: mask.height,
		}
	}

	for i, p := range im.pix {
		c := p.RGBA()
		im.pix[i] = pixel.FromRGBA(c.R, c.G, c.B, mask.pix[i].Luma().Value)
	}
	return nil
}
