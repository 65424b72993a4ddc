package raster

import "github.com/ironsheep/rasterkit/internal/pixel"

// Crop replaces the buffer with the sub-rectangle [x1,x2) x [y1,y2).
// Coordinates are clamped to the image bounds, so any rectangle is accepted.
// An inverted rectangle (x2 <= x1 or y2 <= y1 after clamping) produces the
// empty image rather than an error.
func (im *Image) Crop(x1, y1, x2, y2 int) {
	x1 = clamp(x1, 0, im.width)
	x2 = clamp(x2, 0, im.width)
	y1 = clamp(y1, 0, im.height)
	y2 = clamp(y2, 0, im.height)

	if x2 <= x1 || y2 <= y1 {
		im.width, im.height = 0, 0
		im.pix = nil
		return
	}

	w, h := x2-x1, y2-y1
	pix := make([]pixel.Pixel, w*h)
	for y := 0; y < h; y++ {
		srcRow := (y1+y)*im.width + x1
		copy(pix[y*w:(y+1)*w], im.pix[srcRow:srcRow+w])
	}

	im.width, im.height = w, h
	im.pix = pix
}

// Mirror reverses the column order in place.
func (im *Image) Mirror() {
	for y := 0; y < im.height; y++ {
		row := im.pix[y*im.width : (y+1)*im.width]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// Flip reverses the row order in place.
func (im *Image) Flip() {
	for i, j := 0, im.height-1; i < j; i, j = i+1, j-1 {
		top := im.pix[i*im.width : (i+1)*im.width]
		bottom := im.pix[j*im.width : (j+1)*im.width]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// Invert complements every pixel in place: bit negates, grayscale and color
// channels reflect around 255, alpha is untouched.
func (im *Image) Invert() {
	for i := range im.pix {
		im.pix[i] = im.pix[i].Invert()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
