package vg

import "math"

// RadialGradient is a Source that interpolates colors by distance from a
// center point: offset 0 at the center, offset 1 at the radius.
type RadialGradient struct {
	center Point
	radius float64
	stops  []ColorStop
	extend ExtendMode
}

// NewRadialGradient creates a radial gradient. The radius must be positive
// and the stop list non-empty.
func NewRadialGradient(center Point, radius float64, stops []ColorStop, extend ExtendMode) (*RadialGradient, error) {
	if !center.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, ErrNonFiniteCoordinate
	}
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	ns, err := normalizeStops(stops)
	if err != nil {
		return nil, err
	}
	return &RadialGradient{
		center: center,
		radius: radius,
		stops:  ns,
		extend: extend,
	}, nil
}

// ColorAt implements the Source interface.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	dx := x - g.center.X
	dy := y - g.center.Y
	t := math.Sqrt(dx*dx+dy*dy) / g.radius
	return colorAtOffset(g.stops, applyExtend(t, g.extend))
}
