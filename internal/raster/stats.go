package raster

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/rasterkit/internal/pixel"
)

// HistogramResult holds per-channel 256-bin counts. Only the channels the
// image mode carries are populated: L for bit and grayscale images, R/G/B
// for color, plus A for RGBA.
type HistogramResult struct {
	R [256]int `json:"r,omitempty"`
	G [256]int `json:"g,omitempty"`
	B [256]int `json:"b,omitempty"`
	A [256]int `json:"a,omitempty"`
	L [256]int `json:"l,omitempty"`
}

// Histogram counts pixel values per channel.
func (im *Image) Histogram() *HistogramResult {
	out := &HistogramResult{}
	switch im.mode {
	case pixel.ModeBit, pixel.ModeLuma:
		for _, p := range im.pix {
			out.L[p.Luma().Value]++
		}
	case pixel.ModeRGB:
		for _, p := range im.pix {
			c := p.RGB()
			out.R[c.R]++
			out.G[c.G]++
			out.B[c.B]++
		}
	case pixel.ModeRGBA:
		for _, p := range im.pix {
			c := p.RGBA()
			out.R[c.R]++
			out.G[c.G]++
			out.B[c.B]++
			out.A[c.A]++
		}
	}
	return out
}

// AverageColor returns the arithmetic mean of the image's pixels as RGB.
// The empty image averages to black.
func (im *Image) AverageColor() pixel.RGB {
	if im.IsEmpty() {
		return pixel.RGB{}
	}

	var r, g, b int
	for _, p := range im.pix {
		c := p.RGB()
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(im.pix)
	return pixel.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// ColorCount is one entry of a dominant-color report.
type ColorCount struct {
	Hex      string    `json:"hex"`
	Color    pixel.RGB `json:"color"`
	Count    int       `json:"count"`
	Fraction float64   `json:"fraction"`
}

// Perceptually-close colors within this CIE Lab distance collapse into one
// dominant-color entry.
const dominantMergeDistance = 0.12

// DominantColors returns up to n of the most frequent colors, most frequent
// first. Colors perceptually close to an already selected one are folded
// into it rather than listed separately, so near-duplicate shades don't
// crowd out genuinely distinct colors.
func (im *Image) DominantColors(n int) []ColorCount {
	if n <= 0 || im.IsEmpty() {
		return nil
	}

	counts := make(map[pixel.RGB]int)
	for _, p := range im.pix {
		counts[p.RGB()]++
	}

	type entry struct {
		c     pixel.RGB
		count int
	}
	entries := make([]entry, 0, len(counts))
	for c, count := range counts {
		entries = append(entries, entry{c, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		// deterministic order among ties
		a, b := entries[i].c, entries[j].c
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})

	toColorful := func(c pixel.RGB) colorful.Color {
		return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	}

	var picked []entry
	var pickedLab []colorful.Color
	for _, e := range entries {
		cc := toColorful(e.c)
		merged := false
		for i, lab := range pickedLab {
			if cc.DistanceLab(lab) < dominantMergeDistance {
				picked[i].count += e.count
				merged = true
				break
			}
		}
		if merged {
			continue
		}
		if len(picked) < n {
			picked = append(picked, e)
			pickedLab = append(pickedLab, cc)
		}
	}

	// merging can reorder by count
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].count > picked[j].count })

	total := float64(len(im.pix))
	out := make([]ColorCount, len(picked))
	for i, e := range picked {
		out[i] = ColorCount{
			Hex:      toColorful(e.c).Hex(),
			Color:    e.c,
			Count:    e.count,
			Fraction: float64(e.count) / total,
		}
	}
	return out
}
