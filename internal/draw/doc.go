// Package draw provides drawable entities for the engine: shapes that
// render themselves onto a raster.Image through the raster.Drawable
// contract. Each entity carries its own geometry and color; pixels falling
// outside the target image are clipped silently. Colors are converted to the
// target's pixel mode on write, so drawing never breaks the image's uniform
// buffer invariant.
package draw
