package pixel

import "fmt"

// Mode identifies which encoding a Pixel currently holds.
type Mode uint8

const (
	ModeBit Mode = iota
	ModeLuma
	ModeRGB
	ModeRGBA
)

// String returns the wire name of the mode, as used in error messages
// and CLI output.
func (m Mode) String() string {
	switch m {
	case ModeBit:
		return "bitpixel"
	case ModeLuma:
		return "L"
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	default:
		return "unknown"
	}
}

// Channels returns the number of 8-bit channels the mode carries.
// ModeBit counts as one channel.
func (m Mode) Channels() int {
	switch m {
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 1
	}
}

// HasAlpha reports whether the mode carries an alpha channel.
func (m Mode) HasAlpha() bool { return m == ModeRGBA }

// BitPixel is a single-bit pixel that is either on or off.
type BitPixel struct {
	Value bool
}

// Luma is an 8-bit grayscale pixel.
type Luma struct {
	Value uint8
}

// RGB is a 3x8-bit color pixel.
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB pixel with an 8-bit alpha channel.
// Alpha 0 is fully transparent, 255 fully opaque.
type RGBA struct {
	R, G, B, A uint8
}

func (p BitPixel) String() string { return fmt.Sprintf("BitPixel(%t)", p.Value) }
func (p Luma) String() string     { return fmt.Sprintf("L(%d)", p.Value) }
func (p RGB) String() string      { return fmt.Sprintf("RGB(%d, %d, %d)", p.R, p.G, p.B) }
func (p RGBA) String() string     { return fmt.Sprintf("RGBA(%d, %d, %d, %d)", p.R, p.G, p.B, p.A) }

// Pixel lifts the variant into the tagged union.
func (p BitPixel) Pixel() Pixel { return FromBit(p.Value) }

// Pixel lifts the variant into the tagged union.
func (p Luma) Pixel() Pixel { return FromLuma(p.Value) }

// Pixel lifts the variant into the tagged union.
func (p RGB) Pixel() Pixel { return FromRGB(p.R, p.G, p.B) }

// Pixel lifts the variant into the tagged union.
func (p RGBA) Pixel() Pixel { return FromRGBA(p.R, p.G, p.B, p.A) }

// Pixel holds exactly one of the four pixel encodings. The zero value is an
// off BitPixel. Pixels are immutable value data; comparing with == is
// structural per-variant equality because constructors zero the channels the
// active variant does not use.
type Pixel struct {
	mode       Mode
	bit        bool
	l          uint8
	r, g, b, a uint8
}

// FromBit constructs a Pixel in bitpixel mode.
func FromBit(value bool) Pixel {
	return Pixel{mode: ModeBit, bit: value}
}

// FromLuma constructs a Pixel in L (grayscale) mode.
func FromLuma(value uint8) Pixel {
	return Pixel{mode: ModeLuma, l: value}
}

// FromRGB constructs a Pixel in RGB mode.
func FromRGB(r, g, b uint8) Pixel {
	return Pixel{mode: ModeRGB, r: r, g: g, b: b}
}

// FromRGBA constructs a Pixel in RGBA mode.
func FromRGBA(r, g, b, a uint8) Pixel {
	return Pixel{mode: ModeRGBA, r: r, g: g, b: b, a: a}
}

// Mode reports the active encoding.
func (p Pixel) Mode() Mode { return p.mode }

// Bit returns the pixel as a BitPixel value, converting if necessary.
func (p Pixel) Bit() BitPixel {
	q := p.Convert(ModeBit)
	return BitPixel{Value: q.bit}
}

// Luma returns the pixel as a Luma value, converting if necessary.
func (p Pixel) Luma() Luma {
	q := p.Convert(ModeLuma)
	return Luma{Value: q.l}
}

// RGB returns the pixel as an RGB value, converting if necessary.
func (p Pixel) RGB() RGB {
	q := p.Convert(ModeRGB)
	return RGB{R: q.r, G: q.g, B: q.b}
}

// RGBA returns the pixel as an RGBA value, converting if necessary.
func (p Pixel) RGBA() RGBA {
	q := p.Convert(ModeRGBA)
	return RGBA{R: q.r, G: q.g, B: q.b, A: q.a}
}

// String returns the textual form of the active variant,
// e.g. "RGB(255, 0, 0)".
func (p Pixel) String() string {
	switch p.mode {
	case ModeBit:
		return BitPixel{Value: p.bit}.String()
	case ModeLuma:
		return Luma{Value: p.l}.String()
	case ModeRGB:
		return RGB{R: p.r, G: p.g, B: p.b}.String()
	case ModeRGBA:
		return RGBA{R: p.r, G: p.g, B: p.b, A: p.a}.String()
	default:
		return "Pixel(?)"
	}
}
