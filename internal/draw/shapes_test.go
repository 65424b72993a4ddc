package draw

import (
	"testing"

	"github.com/ironsheep/rasterkit/internal/pixel"
	"github.com/ironsheep/rasterkit/internal/raster"
)

var (
	ink   = pixel.FromRGB(255, 0, 0)
	paper = pixel.FromRGB(0, 0, 0)
)

func countInk(t *testing.T, im *raster.Image) int {
	t.Helper()
	n := 0
	for _, p := range im.Pixels() {
		if p == ink {
			n++
		}
	}
	return n
}

func TestRectangleFill(t *testing.T) {
	im := raster.New(10, 10, paper)
	im.Draw(Rectangle{X: 2, Y: 3, Width: 4, Height: 2, Color: ink})

	if got := countInk(t, im); got != 8 {
		t.Errorf("filled pixels: got %d, want 8", got)
	}
	got, _ := im.GetPixel(2, 3)
	if got != ink {
		t.Errorf("corner pixel: got %s", got)
	}
	got, _ = im.GetPixel(6, 3)
	if got != paper {
		t.Errorf("pixel past the right edge: got %s", got)
	}
}

func TestRectangleOutline(t *testing.T) {
	im := raster.New(10, 10, paper)
	im.Draw(Rectangle{X: 1, Y: 1, Width: 5, Height: 4, Color: ink, Thickness: 1})

	// perimeter of a 5x4 rectangle: 2*5 + 2*4 - 4 corners counted once
	if got := countInk(t, im); got != 14 {
		t.Errorf("outline pixels: got %d, want 14", got)
	}
	got, _ := im.GetPixel(3, 2)
	if got != paper {
		t.Errorf("interior pixel: got %s, want untouched", got)
	}
}

func TestRectangleClips(t *testing.T) {
	im := raster.New(4, 4, paper)
	im.Draw(Rectangle{X: 2, Y: 2, Width: 10, Height: 10, Color: ink})

	if got := countInk(t, im); got != 4 {
		t.Errorf("clipped fill: got %d pixels, want 4", got)
	}
}

func TestLineHorizontal(t *testing.T) {
	im := raster.New(8, 3, paper)
	im.Draw(Line{X1: 1, Y1: 1, X2: 6, Y2: 1, Color: ink})

	if got := countInk(t, im); got != 6 {
		t.Errorf("line pixels: got %d, want 6", got)
	}
	for x := 1; x <= 6; x++ {
		got, _ := im.GetPixel(x, 1)
		if got != ink {
			t.Errorf("pixel (%d,1) not drawn", x)
		}
	}
}

func TestLineDiagonal(t *testing.T) {
	im := raster.New(5, 5, paper)
	im.Draw(Line{X1: 0, Y1: 0, X2: 4, Y2: 4, Color: ink})

	for i := 0; i < 5; i++ {
		got, _ := im.GetPixel(i, i)
		if got != ink {
			t.Errorf("pixel (%d,%d) not drawn", i, i)
		}
	}
	if got := countInk(t, im); got != 5 {
		t.Errorf("line pixels: got %d, want 5", got)
	}
}

func TestLineEndpointOrderIrrelevant(t *testing.T) {
	a := raster.New(6, 6, paper)
	b := raster.New(6, 6, paper)

	a.Draw(Line{X1: 1, Y1: 2, X2: 4, Y2: 5, Color: ink})
	b.Draw(Line{X1: 4, Y1: 5, X2: 1, Y2: 2, Color: ink})

	if !a.Equal(b) {
		t.Error("reversing the endpoints should draw the same pixels")
	}
}

func TestLineClips(t *testing.T) {
	im := raster.New(3, 3, paper)
	im.Draw(Line{X1: -5, Y1: 1, X2: 10, Y2: 1, Color: ink})

	if got := countInk(t, im); got != 3 {
		t.Errorf("clipped line: got %d pixels, want 3", got)
	}
}

func TestEllipseFill(t *testing.T) {
	im := raster.New(11, 11, paper)
	im.Draw(Ellipse{CX: 5, CY: 5, RX: 3, RY: 3, Color: ink})

	got, _ := im.GetPixel(5, 5)
	if got != ink {
		t.Error("center not filled")
	}
	for _, p := range [][2]int{{5, 2}, {5, 8}, {2, 5}, {8, 5}} {
		got, _ := im.GetPixel(p[0], p[1])
		if got != ink {
			t.Errorf("extreme point (%d,%d) not filled", p[0], p[1])
		}
	}
	got, _ = im.GetPixel(0, 0)
	if got != paper {
		t.Error("far corner should stay untouched")
	}
}

func TestEllipseOutline(t *testing.T) {
	im := raster.New(11, 11, paper)
	im.Draw(Ellipse{CX: 5, CY: 5, RX: 4, RY: 2, Color: ink, Thickness: 1})

	// vertical extremes come from the first midpoint step
	for _, p := range [][2]int{{5, 3}, {5, 7}} {
		got, _ := im.GetPixel(p[0], p[1])
		if got != ink {
			t.Errorf("extreme point (%d,%d) not drawn", p[0], p[1])
		}
	}
	got, _ := im.GetPixel(5, 5)
	if got != paper {
		t.Error("center of an outlined ellipse should stay untouched")
	}
}

func TestDrawConvertsToImageMode(t *testing.T) {
	im := raster.New(4, 4, pixel.FromLuma(0))
	im.Draw(Rectangle{X: 0, Y: 0, Width: 4, Height: 4, Color: pixel.FromRGB(255, 255, 255)})

	if im.Mode() != pixel.ModeLuma {
		t.Fatalf("mode changed to %s", im.Mode())
	}
	got, _ := im.GetPixel(0, 0)
	if got != pixel.FromLuma(255) {
		t.Errorf("drawn pixel: got %s, want L(255)", got)
	}
}
