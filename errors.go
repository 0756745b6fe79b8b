package vg

import "errors"

// Construction-time validation errors. Validation always completes before
// any pixel is written, so a failed construction never leaves a partially
// drawn shape on the destination surface.
var (
	// ErrNotEnoughPoints reports a shape with fewer vertices than its
	// minimum (for example a polygon with fewer than 3 points).
	ErrNotEnoughPoints = errors.New("vg: not enough points for shape")

	// ErrNonFiniteCoordinate reports a NaN or infinite coordinate passed
	// to a geometry constructor.
	ErrNonFiniteCoordinate = errors.New("vg: non-finite coordinate")

	// ErrInvalidRadius reports a zero, negative, or non-finite radius
	// where a positive one is required.
	ErrInvalidRadius = errors.New("vg: radius must be positive and finite")

	// ErrNoColorStops reports a gradient constructed without color stops.
	ErrNoColorStops = errors.New("vg: gradient needs at least one color stop")

	// ErrDegenerateGradient reports gradient geometry that leaves the
	// gradient parameter undefined (for example a zero-length axis).
	ErrDegenerateGradient = errors.New("vg: degenerate gradient geometry")

	// ErrInvalidPattern reports a pattern with non-positive spacing or
	// thickness.
	ErrInvalidPattern = errors.New("vg: invalid pattern configuration")
)
