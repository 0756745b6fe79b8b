package vg

// LinearGradient is a Source that interpolates colors along the line from
// a start to an end point. Points are projected onto that line; the
// projection parameter selects the color.
type LinearGradient struct {
	start  Point
	end    Point
	stops  []ColorStop
	extend ExtendMode

	// Precomputed direction and squared length of the gradient axis.
	d     Point
	lenSq float64
}

// NewLinearGradient creates a linear gradient between two points. The stop
// list must be non-empty and the points must be distinct.
func NewLinearGradient(start, end Point, stops []ColorStop, extend ExtendMode) (*LinearGradient, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return nil, ErrNonFiniteCoordinate
	}
	d := end.Sub(start)
	lenSq := d.LengthSquared()
	if lenSq < 1e-24 {
		return nil, ErrDegenerateGradient
	}
	ns, err := normalizeStops(stops)
	if err != nil {
		return nil, err
	}
	return &LinearGradient{
		start:  start,
		end:    end,
		stops:  ns,
		extend: extend,
		d:      d,
		lenSq:  lenSq,
	}, nil
}

// ColorAt implements the Source interface.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	t := ((x-g.start.X)*g.d.X + (y-g.start.Y)*g.d.Y) / g.lenSq
	return colorAtOffset(g.stops, applyExtend(t, g.extend))
}
