package vg

// PathElement represents a single command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath with an implicit line back to its start.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered, immutable sequence of move/line/curve/close commands.
// A Path may contain multiple disjoint subpaths, each beginning with MoveTo.
// Paths are produced by PathBuilder and never mutated afterwards; a Path
// value may safely be shared between goroutines.
type Path struct {
	elements []PathElement
}

// Elements returns the path commands. The returned slice is shared and must
// be treated as read-only.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path contains no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Subpath is one vertex loop of a flattened path. Closed records whether
// the source subpath ended with an explicit Close; filling treats every
// subpath as closed regardless, stroking does not.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten reduces the path to polylines at the given flatness tolerance.
// Curves are subdivided until their deviation from a chord is below
// tolerance. The result is derived data: it is regenerated on every call
// and never aliases the path.
func (p *Path) Flatten(tolerance float64) []Subpath {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = FlattenTolerance
	}

	var subpaths []Subpath
	var current []Point
	var start Point
	haveStart := false

	flush := func(closed bool) {
		if len(current) >= 2 {
			subpaths = append(subpaths, Subpath{Points: current, Closed: closed})
		}
		current = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			start = e.Point
			haveStart = true
			current = append(current, e.Point)

		case LineTo:
			if !haveStart {
				start = e.Point
				haveStart = true
			}
			current = append(current, e.Point)

		case QuadTo:
			if len(current) == 0 {
				current = append(current, start)
			}
			q := QuadBez{P0: current[len(current)-1], P1: e.Control, P2: e.Point}
			current = q.Flatten(tolerance, current)

		case CubicTo:
			if len(current) == 0 {
				current = append(current, start)
			}
			c := CubicBez{P0: current[len(current)-1], P1: e.Control1, P2: e.Control2, P3: e.Point}
			current = c.Flatten(tolerance, current)

		case Close:
			if len(current) >= 2 {
				last := current[len(current)-1]
				if last != start {
					current = append(current, start)
				}
			}
			flush(true)
			// Building may continue from the close point; the next
			// MoveTo starts the following subpath.
			current = append(current, start)
		}
	}
	flush(false)

	return subpaths
}

// Bounds returns a bounding box of the path's anchor and control points.
// The true curve bounds are always contained within it, which is all the
// rasterizer needs for clip pruning.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	add := func(pt Point) {
		if first {
			b = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		b = b.Union(Rect{Min: pt, Max: pt})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return b
}
