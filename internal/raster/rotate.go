package raster

import (
	"github.com/anthonynsimon/bild/transform"

	"github.com/ironsheep/rasterkit/internal/pixel"
)

// Rotate90 rotates the image 90 degrees clockwise in place.
func (im *Image) Rotate90() {
	if im.IsEmpty() {
		return
	}
	w, h := im.width, im.height
	pix := make([]pixel.Pixel, len(im.pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) -> (h-1-y, x) in the rotated frame of width h
			pix[x*h+(h-1-y)] = im.pix[y*w+x]
		}
	}
	im.width, im.height = h, w
	im.pix = pix
}

// Rotate180 rotates the image 180 degrees in place.
func (im *Image) Rotate180() {
	for i, j := 0, len(im.pix)-1; i < j; i, j = i+1, j-1 {
		im.pix[i], im.pix[j] = im.pix[j], im.pix[i]
	}
}

// Rotate270 rotates the image 270 degrees clockwise in place.
func (im *Image) Rotate270() {
	if im.IsEmpty() {
		return
	}
	w, h := im.width, im.height
	pix := make([]pixel.Pixel, len(im.pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[(w-1-x)*h+y] = im.pix[y*w+x]
		}
	}
	im.width, im.height = h, w
	im.pix = pix
}

// Rotate rotates the image by an arbitrary angle in degrees, clockwise,
// expanding the bounds to fit the rotated content. Exact quarter turns take
// the lossless in-buffer paths above; everything else resamples through
// bild's rotation and preserves the pixel mode on the way back.
func (im *Image) Rotate(angle float64) {
	switch {
	case im.IsEmpty():
		return
	case angle == 0:
		return
	case angle == 90:
		im.Rotate90()
		return
	case angle == 180:
		im.Rotate180()
		return
	case angle == 270:
		im.Rotate270()
		return
	}

	dst := transform.Rotate(im.toNRGBA(), angle, &transform.RotationOptions{ResizeBounds: true})
	im.replaceFrom(dst)
}
