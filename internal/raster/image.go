package raster

import (
	"fmt"

	"github.com/ironsheep/rasterkit/internal/pixel"
)

// OverlayMode selects how Paste composites source pixels onto this image.
type OverlayMode uint8

const (
	// OverlayReplace overwrites destination pixels unconditionally.
	OverlayReplace OverlayMode = iota
	// OverlayMerge alpha-blends source pixels that carry an alpha channel.
	OverlayMerge
)

func (m OverlayMode) String() string {
	switch m {
	case OverlayReplace:
		return "replace"
	case OverlayMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// Image is a mutable raster image. It exclusively owns its pixel buffer;
// no operation aliases another image's storage.
type Image struct {
	width   int
	height  int
	pix     []pixel.Pixel
	mode    pixel.Mode
	overlay OverlayMode
	format  string
}

// Empty returns the canonical empty image: zero dimensions, no pixels.
// It is the falsy result of degenerate operations such as inverted crops.
func Empty() *Image {
	return &Image{mode: pixel.ModeLuma}
}

// New creates an image of the given size with every pixel set to fill.
// The buffer adopts fill's pixel mode. Non-positive dimensions yield the
// empty image.
func New(width, height int, fill pixel.Pixel) *Image {
	if width <= 0 || height <= 0 {
		im := Empty()
		im.mode = fill.Mode()
		return im
	}

	pix := make([]pixel.Pixel, width*height)
	for i := range pix {
		pix[i] = fill
	}

	return &Image{
		width:  width,
		height: height,
		pix:    pix,
		mode:   fill.Mode(),
	}
}

// FromPixels shapes a flat row-major pixel sequence into an image of the
// given width, with height = len(pix) / width. It returns a ShapeError when
// the length is not an exact multiple of the width.
//
// The buffer mode is taken from the first pixel; any pixel of a different
// mode is converted to it on the way in, keeping the buffer monomorphic.
func FromPixels(width int, pix []pixel.Pixel) (*Image, error) {
	if len(pix) == 0 {
		return Empty(), nil
	}
	if width <= 0 || len(pix)%width != 0 {
		return nil, &ShapeError{Length: len(pix), Width: width}
	}

	mode := pix[0].Mode()
	buf := make([]pixel.Pixel, len(pix))
	for i, p := range pix {
		buf[i] = p.Convert(mode)
	}

	return &Image{
		width:  width,
		height: len(pix) / width,
		pix:    buf,
		mode:   mode,
	}, nil
}

// FromBands composes a multi-channel image from single-channel ones:
// 3 bands build an RGB image, 4 build RGBA (the fourth band is the alpha
// channel). Every band must be in L mode and all bands must share the same
// dimensions.
func FromBands(bands ...*Image) (*Image, error) {
	if len(bands) != 3 && len(bands) != 4 {
		return nil, fmt.Errorf("expected 3 or 4 bands, got %d", len(bands))
	}

	w, h := bands[0].width, bands[0].height
	for _, b := range bands {
		if b.mode != pixel.ModeLuma {
			return nil, &UnexpectedFormatError{Expected: "L", Got: b.mode.String()}
		}
		if b.width != w || b.height != h {
			return nil, &DimensionMismatchError{
				WantWidth: w, WantHeight: h,
				GotWidth: b.width, GotHeight: b.height,
			}
		}
	}

	mode := pixel.ModeRGB
	if len(bands) == 4 {
		mode = pixel.ModeRGBA
	}

	pix := make([]pixel.Pixel, w*h)
	for i := range pix {
		r := bands[0].pix[i].Luma().Value
		g := bands[1].pix[i].Luma().Value
		b := bands[2].pix[i].Luma().Value
		if mode == pixel.ModeRGBA {
			pix[i] = pixel.FromRGBA(r, g, b, bands[3].pix[i].Luma().Value)
		} else {
			pix[i] = pixel.FromRGB(r, g, b)
		}
	}

	return &Image{width: w, height: h, pix: pix, mode: mode}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Dimensions returns the width and height.
func (im *Image) Dimensions() (int, int) { return im.width, im.height }

// Len returns the number of pixels, width*height.
func (im *Image) Len() int { return len(im.pix) }

// IsEmpty reports whether the image holds no pixels.
func (im *Image) IsEmpty() bool { return len(im.pix) == 0 }

// Mode reports the pixel encoding of the buffer. Every pixel in the buffer
// holds this mode.
func (im *Image) Mode() pixel.Mode { return im.mode }

// Format returns the container format tag the image was decoded from or last
// associated with. It is informational only and never affects pixel
// operations.
func (im *Image) Format() string { return im.format }

// SetFormat records the container format tag.
func (im *Image) SetFormat(format string) { im.format = format }

// OverlayMode returns the compositing policy used by Paste.
func (im *Image) OverlayMode() OverlayMode { return im.overlay }

// SetOverlayMode selects the compositing policy used by Paste.
func (im *Image) SetOverlayMode(mode OverlayMode) { im.overlay = mode }

// GetPixel returns the pixel at (x, y), or an OutOfBoundsError when the
// coordinates fall outside [0,width) x [0,height).
func (im *Image) GetPixel(x, y int) (pixel.Pixel, error) {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return pixel.Pixel{}, &OutOfBoundsError{X: x, Y: y, Width: im.width, Height: im.height}
	}
	return im.pix[y*im.width+x], nil
}

// SetPixel replaces the pixel at (x, y), converting p to the buffer's mode
// first. It returns an OutOfBoundsError when the coordinates fall outside
// the image.
func (im *Image) SetPixel(x, y int, p pixel.Pixel) error {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return &OutOfBoundsError{X: x, Y: y, Width: im.width, Height: im.height}
	}
	im.pix[y*im.width+x] = p.Convert(im.mode)
	return nil
}

// Pixels returns a copy of the full row-major pixel buffer. For large images
// this materializes every pixel and is correspondingly expensive.
func (im *Image) Pixels() []pixel.Pixel {
	out := make([]pixel.Pixel, len(im.pix))
	copy(out, im.pix)
	return out
}

// Clone returns a deep copy with its own buffer.
func (im *Image) Clone() *Image {
	out := *im
	out.pix = make([]pixel.Pixel, len(im.pix))
	copy(out.pix, im.pix)
	return &out
}

// Convert re-encodes every pixel in place to the target mode.
func (im *Image) Convert(target pixel.Mode) {
	if im.mode == target {
		return
	}
	for i := range im.pix {
		im.pix[i] = im.pix[i].Convert(target)
	}
	im.mode = target
}

// Equal reports whether two images have the same dimensions, mode and pixel
// content. Format tags and overlay modes are metadata and do not participate.
func (im *Image) Equal(other *Image) bool {
	if im.width != other.width || im.height != other.height || im.mode != other.mode {
		return false
	}
	for i := range im.pix {
		if im.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Drawable is the capability contract for entities that render themselves
// onto an image. An entity carries its own geometry and color and mutates
// the target buffer directly; the engine does not interpret its internals.
type Drawable interface {
	Draw(im *Image)
}

// Draw renders the entity onto this image.
func (im *Image) Draw(d Drawable) {
	d.Draw(im)
}

func (im *Image) String() string {
	return fmt.Sprintf("<Image mode=%s width=%d height=%d format=%s>",
		im.mode, im.width, im.height, im.format)
}
