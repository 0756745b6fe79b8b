package vg

import "image"

// Surface is a rectangular pixel target the canvas draws into. Colors are
// exchanged as non-premultiplied [RGBA]; implementations own the storage
// representation.
type Surface interface {
	// GetPixel returns the color at (x, y), or [Transparent] when the
	// coordinate lies outside the surface.
	GetPixel(x, y int) RGBA

	// SetPixel stores the color at (x, y). Out-of-range coordinates are
	// ignored.
	SetPixel(x, y int, c RGBA)

	// Bounds returns the surface extent in pixel coordinates.
	Bounds() image.Rectangle
}
