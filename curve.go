package vg

import "math"

// Curve types for 2D geometry operations.

// FlattenTolerance is the default maximum chord-to-control-point deviation,
// in pixels, when reducing curves to line segments.
const FlattenTolerance = 0.1

// maxFlattenDepth is the hard recursion cap for adaptive subdivision.
// Degenerate curves (such as all control points coincident) terminate here
// instead of recursing without bound.
const maxFlattenDepth = 16

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1) using the Bernstein form.
// Stable for t at and near the endpoints: t=0 returns exactly P0 and t=1
// exactly P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	q0 := q.P0.Lerp(q.P1, 0.5)
	q1 := q.P1.Lerp(q.P2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	return QuadBez{P0: q.P0, P1: q0, P2: mid},
		QuadBez{P0: mid, P1: q1, P2: q.P2}
}

// Tangent returns the (unnormalized) tangent vector at parameter t.
func (q QuadBez) Tangent(t float64) Point {
	// B'(t) = 2(1-t)(P1-P0) + 2t(P2-P1)
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Lerp(d1, t).Mul(2)
}

// Flatten appends the curve reduced to line segments onto dst, excluding
// the start point P0. Subdivision stops when the control point deviates
// from the chord by less than tolerance, or at the recursion depth cap.
func (q QuadBez) Flatten(tolerance float64, dst []Point) []Point {
	return flattenQuadRec(q, tolerance, 0, dst)
}

func flattenQuadRec(q QuadBez, tolerance float64, depth int, dst []Point) []Point {
	if depth >= maxFlattenDepth || distanceToSegment(q.P1, q.P0, q.P2) < tolerance {
		return append(dst, q.P2)
	}
	a, b := q.Subdivide()
	dst = flattenQuadRec(a, tolerance, depth+1, dst)
	return flattenQuadRec(b, tolerance, depth+1, dst)
}

// SampleN returns n+1 points evaluated at uniform t steps, including both
// endpoints. Fixed-count sampling gives deterministic, seam-free output
// when two curves must be sampled at matching parameters.
func (q QuadBez) SampleN(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, q.Eval(float64(i)/float64(n)))
	}
	return pts
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1) using the Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Tangent returns the (unnormalized) tangent vector at parameter t.
func (c CubicBez) Tangent(t float64) Point {
	// B'(t) = 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2]
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Normal returns the unit normal (perpendicular to tangent) at parameter t.
func (c CubicBez) Normal(t float64) Point {
	return c.Tangent(t).Perp().Normalize()
}

// Flatten appends the curve reduced to line segments onto dst, excluding
// the start point P0.
func (c CubicBez) Flatten(tolerance float64, dst []Point) []Point {
	return flattenCubicRec(c, tolerance, 0, dst)
}

func flattenCubicRec(c CubicBez, tolerance float64, depth int, dst []Point) []Point {
	d1 := distanceToSegment(c.P1, c.P0, c.P3)
	d2 := distanceToSegment(c.P2, c.P0, c.P3)
	if depth >= maxFlattenDepth || math.Max(d1, d2) < tolerance {
		return append(dst, c.P3)
	}
	a, b := c.Subdivide()
	dst = flattenCubicRec(a, tolerance, depth+1, dst)
	return flattenCubicRec(b, tolerance, depth+1, dst)
}

// SampleN returns n+1 points evaluated at uniform t steps, including both
// endpoints. See QuadBez.SampleN.
func (c CubicBez) SampleN(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, c.Eval(float64(i)/float64(n)))
	}
	return pts
}

// -------------------------------------------------------------------
// Arc sampling
// -------------------------------------------------------------------

// maxArcSegments bounds the segment count for enormous radii.
const maxArcSegments = 4096

// ArcSegments returns the number of uniform angular steps needed to keep
// the chord error of a sampled arc below FlattenTolerance. The count scales
// with the radius so large arcs stay smooth.
func ArcSegments(radius, sweep float64) int {
	sweep = math.Abs(sweep)
	if sweep == 0 || radius <= 0 {
		return 1
	}
	// Chord sagitta for angular step a is r*(1 - cos(a/2)).
	cosHalf := 1 - FlattenTolerance/radius
	if cosHalf <= 0 {
		return int(math.Max(1, math.Ceil(sweep/(math.Pi/2))))
	}
	step := 2 * math.Acos(cosHalf)
	n := int(math.Ceil(sweep / step))
	if n < 1 {
		n = 1
	}
	if n > maxArcSegments {
		n = maxArcSegments
	}
	return n
}

// ArcPoints samples a circular arc around center at uniform angular steps
// from angle a0 to a1 (radians). Angles are signed and not normalized:
// sweeps beyond a full turn draw more than 360 degrees. Both endpoints are
// included.
func ArcPoints(center Point, radius, a0, a1 float64) []Point {
	n := ArcSegments(radius, a1-a0)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return pts
}

// distanceToSegment calculates the perpendicular distance from point p to
// line segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLenSq := ab.LengthSquared()

	if abLenSq < 1e-20 {
		// Segment is a point
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLenSq
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
