// Package raster implements the in-memory image container and every
// operation the engine performs on it: cropping, resizing, mirroring,
// inversion, rotation, pasting, masking, band decomposition and color
// statistics.
//
// # Buffer model
//
// An Image owns a flat row-major buffer of pixel.Pixel values
// (index = y*width + x). The buffer is monomorphic: every pixel in it holds
// the same encoding for the lifetime of the image. Mutators that could
// introduce a foreign encoding (SetPixel, Paste, FromBands) convert incoming
// pixels to the buffer's mode before writing instead of mixing variants.
//
// After every operation len(buffer) == width*height holds. Operations that
// logically replace the buffer (Crop, Resize, Rotate) build the new buffer
// first and swap it in.
//
// # Concurrency
//
// Images never share storage, so distinct images may be processed from
// different goroutines freely. A single Image is not safe for concurrent
// mutation; callers must serialize access to it.
//
// # Errors
//
// Precondition violations are reported with the typed errors in this package
// (ShapeError, DimensionMismatchError, UnexpectedFormatError,
// OutOfBoundsError). Geometric clipping is defined behavior, not an error:
// crop bounds are clamped and paste overhang is silently discarded.
package raster
