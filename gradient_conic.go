package vg

import "math"

// ConicGradient is a Source that sweeps colors around a center point:
// offset 0 at the start angle, offset 1 after a full clockwise turn.
type ConicGradient struct {
	center     Point
	startAngle float64
	stops      []ColorStop
	extend     ExtendMode
}

// NewConicGradient creates a conic (sweep) gradient around a center. The
// start angle is in radians; the stop list must be non-empty.
func NewConicGradient(center Point, startAngle float64, stops []ColorStop, extend ExtendMode) (*ConicGradient, error) {
	if !center.IsFinite() || math.IsNaN(startAngle) || math.IsInf(startAngle, 0) {
		return nil, ErrNonFiniteCoordinate
	}
	ns, err := normalizeStops(stops)
	if err != nil {
		return nil, err
	}
	return &ConicGradient{
		center:     center,
		startAngle: startAngle,
		stops:      ns,
		extend:     extend,
	}, nil
}

// ColorAt implements the Source interface.
func (g *ConicGradient) ColorAt(x, y float64) RGBA {
	angle := math.Atan2(y-g.center.Y, x-g.center.X) - g.startAngle
	t := angle / (2 * math.Pi)
	t -= math.Floor(t) // wrap into [0, 1)
	return colorAtOffset(g.stops, applyExtend(t, g.extend))
}
