package draw

import (
	"github.com/ironsheep/rasterkit/internal/pixel"
	"github.com/ironsheep/rasterkit/internal/raster"
)

// plot writes a single pixel, clipping anything outside the image.
func plot(im *raster.Image, x, y int, c pixel.Pixel) {
	if x < 0 || x >= im.Width() || y < 0 || y >= im.Height() {
		return
	}
	// in bounds, cannot fail
	_ = im.SetPixel(x, y, c)
}

// Rectangle is an axis-aligned rectangle. A non-positive Thickness fills it;
// otherwise only a border of that many pixels is drawn.
type Rectangle struct {
	X, Y          int
	Width, Height int
	Color         pixel.Pixel
	Thickness     int
}

// Draw renders the rectangle onto im.
func (r Rectangle) Draw(im *raster.Image) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	if r.Thickness <= 0 {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				plot(im, x, y, r.Color)
			}
		}
		return
	}

	t := r.Thickness
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			onBorder := x < r.X+t || x >= r.X+r.Width-t ||
				y < r.Y+t || y >= r.Y+r.Height-t
			if onBorder {
				plot(im, x, y, r.Color)
			}
		}
	}
}

// Line is a one-pixel-wide straight segment between two points, inclusive.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Color  pixel.Pixel
}

// Draw renders the line onto im using Bresenham's algorithm.
func (l Line) Draw(im *raster.Image) {
	x1, y1, x2, y2 := l.X1, l.Y1, l.X2, l.Y2

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(im, x1, y1, l.Color)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// Ellipse is an axis-aligned ellipse centered at (CX, CY). A non-positive
// Thickness fills it; otherwise a one-pixel outline is drawn regardless of
// the exact thickness value.
type Ellipse struct {
	CX, CY int
	RX, RY int
	Color  pixel.Pixel
	// Thickness <= 0 fills the ellipse.
	Thickness int
}

// Draw renders the ellipse onto im.
func (e Ellipse) Draw(im *raster.Image) {
	if e.RX <= 0 || e.RY <= 0 {
		plot(im, e.CX, e.CY, e.Color)
		return
	}

	if e.Thickness <= 0 {
		// scanline fill against the ellipse equation
		rx2 := float64(e.RX * e.RX)
		ry2 := float64(e.RY * e.RY)
		for dy := -e.RY; dy <= e.RY; dy++ {
			for dx := -e.RX; dx <= e.RX; dx++ {
				if float64(dx*dx)/rx2+float64(dy*dy)/ry2 <= 1 {
					plot(im, e.CX+dx, e.CY+dy, e.Color)
				}
			}
		}
		return
	}

	e.outline(im)
}

// outline draws the ellipse boundary with the midpoint algorithm.
func (e Ellipse) outline(im *raster.Image) {
	rx, ry := e.RX, e.RY
	rx2, ry2 := rx*rx, ry*ry

	x, y := 0, ry
	px, py := 0, 2*rx2*y

	put := func(dx, dy int) {
		plot(im, e.CX+dx, e.CY+dy, e.Color)
		plot(im, e.CX-dx, e.CY+dy, e.Color)
		plot(im, e.CX+dx, e.CY-dy, e.Color)
		plot(im, e.CX-dx, e.CY-dy, e.Color)
	}

	// region 1: slope > -1
	p := ry2 - rx2*ry + rx2/4
	put(x, y)
	for px < py {
		x++
		px += 2 * ry2
		if p < 0 {
			p += ry2 + px
		} else {
			y--
			py -= 2 * rx2
			p += ry2 + px - py
		}
		put(x, y)
	}

	// region 2: slope <= -1
	p = ry2*(x*x+x) + ry2/4 + rx2*(y-1)*(y-1) - rx2*ry2
	for y > 0 {
		y--
		py -= 2 * rx2
		if p > 0 {
			p += rx2 - py
		} else {
			x++
			px += 2 * ry2
			p += rx2 - py + px
		}
		put(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
