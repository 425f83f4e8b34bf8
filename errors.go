package vgpaint

import "errors"

// Sentinel errors returned by canvas construction and pixel access.
// Once a Painter exists, drawing operations never fail; invalid input
// degrades to a no-op instead.
var (
	// ErrInvalidDimensions is returned when a canvas is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("vgpaint: invalid canvas dimensions")

	// ErrInvalidRegion is returned by CopyRegion when the requested
	// region does not lie fully inside the canvas.
	ErrInvalidRegion = errors.New("vgpaint: region outside canvas bounds")

	// ErrPainterActive is returned by Canvas.Painter while a previous
	// painter on the same canvas has not been ended.
	ErrPainterActive = errors.New("vgpaint: canvas already has an active painter")

	// ErrNoRasterizer is returned when no rasterizer backend is
	// registered or the requested one is unknown.
	ErrNoRasterizer = errors.New("vgpaint: no rasterizer available")
)
