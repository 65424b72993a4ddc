// Package pixel defines the engine's pixel model: four fixed encodings
// (1-bit, 8-bit grayscale, RGB, RGBA) and the Pixel tagged union that holds
// exactly one of them at a time.
//
// # Modes
//
// A Pixel's active encoding is reported by Mode():
//   - ModeBit ("bitpixel"): a pixel that is either on or off
//   - ModeLuma ("L"): 8-bit grayscale
//   - ModeRGB ("RGB"): 3x8-bit color
//   - ModeRGBA ("RGBA"): RGB plus an 8-bit alpha channel
//
// # Conversion
//
// Convert defines a total, pure mapping between every pair of modes. Widening
// never loses information (bit -> L -> RGB -> RGBA); narrowing discards
// precision deterministically instead of failing:
//   - RGB/RGBA -> L uses the ITU-R BT.601 weights (0.299, 0.587, 0.114)
//   - L -> bit thresholds at 128
//   - RGBA -> RGB drops the alpha channel
//
// The weights and the threshold are part of the conversion contract and are
// not configurable. Gray values are fixed points: L(v) -> RGB(v,v,v) -> L(v).
//
// # Equality
//
// Pixel and the variant value types are plain value data; == compares them
// structurally.
package pixel
