package pixel

// BitThreshold is the grayscale cutoff for narrowing to bitpixel mode:
// values at or above it become an on pixel. Fixed contract, not tunable.
const BitThreshold = 128

// ITU-R BT.601 luma weights, scaled by 1000 for integer math. The same
// weights are used everywhere the engine reduces color to grayscale, so
// gray values are exact fixed points of RGB -> L.
const (
	lumaRed   = 299
	lumaGreen = 587
	lumaBlue  = 114
)

func lumaOf(r, g, b uint8) uint8 {
	return uint8((lumaRed*int(r) + lumaGreen*int(g) + lumaBlue*int(b)) / 1000)
}

// Convert returns the pixel re-encoded in the target mode. The mapping is
// total and pure: widening is lossless (false/true -> 0/255, grayscale
// replicates into the color channels, color gains an opaque alpha), narrowing
// discards precision deterministically (alpha is dropped, color reduces to
// BT.601 luma, grayscale thresholds at BitThreshold). It never fails.
func (p Pixel) Convert(target Mode) Pixel {
	if p.mode == target {
		return p
	}

	// Widen to RGBA first, then narrow. The widening steps are exact, so
	// routing through RGBA preserves the documented fixed points (gray
	// values survive RGB -> L, bit survives bit -> L -> bit).
	r, g, b, a := p.channels()

	switch target {
	case ModeBit:
		return FromBit(lumaOf(r, g, b) >= BitThreshold)
	case ModeLuma:
		return FromLuma(lumaOf(r, g, b))
	case ModeRGB:
		return FromRGB(r, g, b)
	case ModeRGBA:
		return FromRGBA(r, g, b, a)
	default:
		return p
	}
}

// channels widens the active variant to 8-bit RGBA channels.
func (p Pixel) channels() (r, g, b, a uint8) {
	switch p.mode {
	case ModeBit:
		if p.bit {
			return 255, 255, 255, 255
		}
		return 0, 0, 0, 255
	case ModeLuma:
		return p.l, p.l, p.l, 255
	case ModeRGB:
		return p.r, p.g, p.b, 255
	case ModeRGBA:
		return p.r, p.g, p.b, p.a
	default:
		return 0, 0, 0, 255
	}
}

// Invert returns the per-variant complement: bit negates, grayscale and the
// color channels reflect around 255, alpha is left untouched.
func (p Pixel) Invert() Pixel {
	switch p.mode {
	case ModeBit:
		return FromBit(!p.bit)
	case ModeLuma:
		return FromLuma(255 - p.l)
	case ModeRGB:
		return FromRGB(255-p.r, 255-p.g, 255-p.b)
	case ModeRGBA:
		return FromRGBA(255-p.r, 255-p.g, 255-p.b, p.a)
	default:
		return p
	}
}

// Blend composites src over dst using the source-over rule and returns the
// result in dst's mode. Both pixels are widened to RGBA for the math; a fully
// opaque source therefore replaces dst and a fully transparent source leaves
// it unchanged.
func Blend(dst, src Pixel) Pixel {
	s := src.Convert(ModeRGBA)
	d := dst.Convert(ModeRGBA)

	sa := float64(s.a) / 255
	da := float64(d.a) / 255

	outA := sa + da*(1-sa)
	if outA == 0 {
		return FromRGBA(0, 0, 0, 0).Convert(dst.mode)
	}

	over := func(sc, dc uint8) uint8 {
		v := (float64(sc)*sa + float64(dc)*da*(1-sa)) / outA
		return uint8(v + 0.5)
	}

	return FromRGBA(
		over(s.r, d.r),
		over(s.g, d.g),
		over(s.b, d.b),
		uint8(outA*255+0.5),
	).Convert(dst.mode)
}
