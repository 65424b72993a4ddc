package raster

import (
	"github.com/disintegration/imaging"
)

// ResizeAlgorithm selects the resampling kernel used by Resize.
type ResizeAlgorithm uint8

const (
	ResizeNearest ResizeAlgorithm = iota
	ResizeBox
	ResizeBilinear
	ResizeBicubic
	ResizeMitchell
	ResizeLanczos
)

func (a ResizeAlgorithm) String() string {
	switch a {
	case ResizeNearest:
		return "nearest"
	case ResizeBox:
		return "box"
	case ResizeBilinear:
		return "bilinear"
	case ResizeBicubic:
		return "bicubic"
	case ResizeMitchell:
		return "mitchell"
	case ResizeLanczos:
		return "lanczos"
	default:
		return "unknown"
	}
}

func (a ResizeAlgorithm) filter() imaging.ResampleFilter {
	switch a {
	case ResizeNearest:
		return imaging.NearestNeighbor
	case ResizeBox:
		return imaging.Box
	case ResizeBilinear:
		return imaging.Linear
	case ResizeBicubic:
		return imaging.CatmullRom
	case ResizeMitchell:
		return imaging.MitchellNetravali
	case ResizeLanczos:
		return imaging.Lanczos
	default:
		return imaging.NearestNeighbor
	}
}

// ParseResizeAlgorithm maps an algorithm name to its enum value.
// Unknown names fall back to nearest-neighbor.
func ParseResizeAlgorithm(name string) ResizeAlgorithm {
	for _, a := range []ResizeAlgorithm{
		ResizeNearest, ResizeBox, ResizeBilinear, ResizeBicubic, ResizeMitchell, ResizeLanczos,
	} {
		if a.String() == name {
			return a
		}
	}
	return ResizeNearest
}

// Resize resamples the image in place to width x height with the selected
// kernel. The pixel mode is preserved: resampling happens on an RGBA view of
// the buffer and the result is converted back, so a grayscale image stays
// grayscale (the kernel weights every channel identically) and a bit image is
// re-thresholded. Resizing to a non-positive dimension collapses to the empty
// image; resizing the empty image is a no-op.
func (im *Image) Resize(width, height int, algo ResizeAlgorithm) {
	if im.IsEmpty() {
		return
	}
	if width <= 0 || height <= 0 {
		im.width, im.height = 0, 0
		im.pix = nil
		return
	}
	if width == im.width && height == im.height {
		return
	}

	dst := imaging.Resize(im.toNRGBA(), width, height, algo.filter())
	im.replaceFrom(dst)
}
