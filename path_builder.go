package vg

import "math"

// magic constant for circle approximation with cubic Beziers,
// 4/3 * (sqrt(2) - 1)
const kappa = 0.5522847498307936

// PathBuilder accumulates path commands and produces an immutable Path.
// All command methods return the builder for chaining. Coordinates are
// validated as they are added: the first non-finite coordinate poisons the
// builder and Build returns ErrNonFiniteCoordinate without emitting a path.
type PathBuilder struct {
	elements []PathElement
	start    Point // start of current subpath
	current  Point
	err      error
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{
		elements: make([]PathElement, 0, 16),
	}
}

func (b *PathBuilder) check(pts ...Point) bool {
	if b.err != nil {
		return false
	}
	for _, p := range pts {
		if !p.IsFinite() {
			b.err = ErrNonFiniteCoordinate
			return false
		}
	}
	return true
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	if !b.check(pt) {
		return b
	}
	b.elements = append(b.elements, MoveTo{Point: pt})
	b.start = pt
	b.current = pt
	return b
}

// LineTo draws a line to (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	if !b.check(pt) {
		return b
	}
	b.elements = append(b.elements, LineTo{Point: pt})
	b.current = pt
	return b
}

// QuadTo draws a quadratic Bezier curve with control point (cx, cy).
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	ctrl, pt := Pt(cx, cy), Pt(x, y)
	if !b.check(ctrl, pt) {
		return b
	}
	b.elements = append(b.elements, QuadTo{Control: ctrl, Point: pt})
	b.current = pt
	return b
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	c1, c2, pt := Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)
	if !b.check(c1, c2, pt) {
		return b
	}
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	b.current = pt
	return b
}

// Close closes the current subpath with an implicit line back to its start
// and marks it closed. Building continues; the next MoveTo starts a new
// subpath.
func (b *PathBuilder) Close() *PathBuilder {
	if b.err != nil {
		return b
	}
	b.elements = append(b.elements, Close{})
	b.current = b.start
	return b
}

// CurrentPoint returns the current pen position.
func (b *PathBuilder) CurrentPoint() Point {
	return b.current
}

// Rect adds a closed rectangle subpath.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// CornerRadii holds one radius per rectangle corner. Each corner is
// independently zero (square) or positive (rounded).
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformRadii returns the same radius for all four corners.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// clampRadii limits each radius to half the smaller rectangle dimension.
func clampRadii(radii CornerRadii, w, h float64) CornerRadii {
	maxR := math.Min(w, h) / 2
	clamp := func(r float64) float64 {
		if r < 0 {
			return 0
		}
		return math.Min(r, maxR)
	}
	return CornerRadii{
		TopLeft:     clamp(radii.TopLeft),
		TopRight:    clamp(radii.TopRight),
		BottomRight: clamp(radii.BottomRight),
		BottomLeft:  clamp(radii.BottomLeft),
	}
}

// RoundRect adds a rectangle with a uniform corner radius.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	return b.RoundRectCorners(x, y, w, h, UniformRadii(r))
}

// RoundRectCorners adds a rectangle with per-corner radii: four arc
// quadrants joined by straight edges. A zero radius leaves the corner
// square.
func (b *PathBuilder) RoundRectCorners(x, y, w, h float64, radii CornerRadii) *PathBuilder {
	rr := clampRadii(radii, w, h)

	b.MoveTo(x+rr.TopLeft, y)
	b.LineTo(x+w-rr.TopRight, y)
	if r := rr.TopRight; r > 0 {
		k := kappa * r
		b.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	}
	b.LineTo(x+w, y+h-rr.BottomRight)
	if r := rr.BottomRight; r > 0 {
		k := kappa * r
		b.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	}
	b.LineTo(x+rr.BottomLeft, y+h)
	if r := rr.BottomLeft; r > 0 {
		k := kappa * r
		b.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	}
	b.LineTo(x, y+rr.TopLeft)
	if r := rr.TopLeft; r > 0 {
		k := kappa * r
		b.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	}
	return b.Close()
}

// Circle adds a closed circle subpath.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed ellipse subpath built from four cubic arcs.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	kx := kappa * rx
	ky := kappa * ry

	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return b.Close()
}

// Polygon adds a closed regular polygon with the given number of sides,
// sampled evenly around the center starting at the top.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		if b.err == nil {
			b.err = ErrNotEnoughPoints
		}
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}

// Star adds a closed star with the given point count, alternating between
// the outer and inner radius.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		if b.err == nil {
			b.err = ErrNotEnoughPoints
		}
		return b
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}

// Arc appends a circular arc from angle a0 to a1 (radians, signed, not
// normalized) around center (cx, cy), approximated by cubic segments of at
// most 90 degrees each. If the builder has no current subpath, the arc
// starts one; otherwise a line connects the current point to the arc start.
func (b *PathBuilder) Arc(cx, cy, r, a0, a1 float64) *PathBuilder {
	if b.err != nil {
		return b
	}

	sweep := a1 - a0
	if sweep == 0 {
		return b
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(sweep) / maxAngle))
	angleStep := sweep / float64(numSegments)

	startX := cx + r*math.Cos(a0)
	startY := cy + r*math.Sin(a0)
	if len(b.elements) == 0 {
		b.MoveTo(startX, startY)
	} else {
		b.LineTo(startX, startY)
	}

	for i := 0; i < numSegments; i++ {
		s0 := a0 + float64(i)*angleStep
		s1 := s0 + angleStep
		b.arcSegment(cx, cy, r, s0, s1)
	}
	return b
}

// Polyline appends a sequence of connected line segments starting with a
// MoveTo at the first point.
func (b *PathBuilder) Polyline(points []Point) *PathBuilder {
	for i, p := range points {
		if i == 0 {
			b.MoveTo(p.X, p.Y)
		} else {
			b.LineTo(p.X, p.Y)
		}
	}
	return b
}

// arcSegment adds a single arc segment (at most 90 degrees) as one cubic.
func (b *PathBuilder) arcSegment(cx, cy, r, a0, a1 float64) {
	// Control point distance per "Drawing an elliptical arc using
	// polylines, quadratic or cubic Bezier curves".
	da := a1 - a0
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	x1 := cx + r*cos0
	y1 := cy + r*sin0
	x2 := cx + r*cos1
	y2 := cy + r*sin1

	b.CubicTo(
		x1-alpha*r*sin0, y1+alpha*r*cos0,
		x2+alpha*r*sin1, y2-alpha*r*cos1,
		x2, y2,
	)
}

// Build returns the finished immutable Path, or the first validation error
// encountered while building. The builder must not be reused afterwards.
func (b *PathBuilder) Build() (*Path, error) {
	if b.err != nil {
		return nil, b.err
	}
	elements := make([]PathElement, len(b.elements))
	copy(elements, b.elements)
	return &Path{elements: elements}, nil
}

// MustBuild is Build for paths whose coordinates are known to be finite,
// such as shapes generated from validated parameters. It panics on a
// poisoned builder.
func (b *PathBuilder) MustBuild() *Path {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
