package raster

import "fmt"

// ShapeError reports a flat pixel buffer whose length does not divide evenly
// into rows of the declared width.
type ShapeError struct {
	Length int
	Width  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("pixel buffer of length %d does not divide into rows of width %d", e.Length, e.Width)
}

// DimensionMismatchError reports inputs of incompatible width or height,
// e.g. bands of different sizes or a mask that does not cover its source.
type DimensionMismatchError struct {
	WantWidth, WantHeight int
	GotWidth, GotHeight   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: want %dx%d, got %dx%d",
		e.WantWidth, e.WantHeight, e.GotWidth, e.GotHeight)
}

// UnexpectedFormatError reports an operation invoked on an image whose pixel
// mode does not satisfy the operation's precondition.
type UnexpectedFormatError struct {
	Expected string
	Got      string
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("expected mode `%s`, got `%s`", e.Expected, e.Got)
}

// OutOfBoundsError reports indexed pixel access outside the image.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinates (%d, %d) outside image bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}
