// Package stroke converts stroked polylines into filled outlines.
//
// A stroke becomes a FILL contour: the outer offset path runs forward, the
// inner offset path runs reversed, caps connect the endpoints of open
// polylines, and joins connect adjacent segments. Closed polylines produce
// two contours (outer and inner ring) whose opposite windings leave an
// annulus under the non-zero fill rule.
package stroke

import "math"

// Point is a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Dot returns the dot product.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the vector's length.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns a unit vector, or the zero vector for near-zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-10 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Angle returns the vector's angle in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Cap specifies the shape at the ends of an open stroke.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
	// CapSquare extends the stroke by half its width, then ends flat.
	CapSquare
)

// Join specifies the shape where two segments meet.
type Join int

const (
	// JoinMiter extends the outer edges to a sharp point, subject to the
	// miter limit.
	JoinMiter Join = iota
	// JoinRound connects the outer edges with a circular arc.
	JoinRound
	// JoinBevel connects the outer edges with a straight line.
	JoinBevel
)

// Options configures stroke expansion.
type Options struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultOptions returns a 1-unit butt-capped miter stroke.
func DefaultOptions() Options {
	return Options{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4.0,
	}
}

// Expander converts polylines into filled stroke outlines.
type Expander struct {
	opts      Options
	tolerance float64
}

// NewExpander creates an expander for the given style. Non-positive width
// or miter limit fall back to the defaults.
func NewExpander(opts Options) *Expander {
	if opts.Width <= 0 {
		opts.Width = 1.0
	}
	if opts.MiterLimit <= 0 {
		opts.MiterLimit = 4.0
	}
	return &Expander{opts: opts, tolerance: 0.25}
}

// SetTolerance sets the chord tolerance for round caps and joins.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the stroke outline of the polyline as one or more closed
// contours. Consecutive duplicate points are dropped first. A polyline
// reduced to a single point yields a dot for round and square caps and
// nothing for butt caps.
func (e *Expander) Expand(pts []Point, closed bool) [][]Point {
	pts = dedupe(pts)
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return e.dot(pts[0])
	}
	if closed && len(pts) >= 3 {
		return e.expandClosed(pts)
	}
	return e.expandOpen(pts)
}

func (e *Expander) expandOpen(pts []Point) [][]Point {
	halfW := 0.5 * e.opts.Width
	n := len(pts)
	fwd := make([]Point, 0, 2*n)
	bwd := make([]Point, 0, 2*n)

	var prevTan, prevNorm, firstNorm Vec2
	for i := 0; i < n-1; i++ {
		tan := pts[i+1].Sub(pts[i])
		norm := tan.Perp().Normalize().Scale(halfW)
		if i == 0 {
			firstNorm = norm
			fwd = append(fwd, pts[0].Add(norm.Neg()))
			bwd = append(bwd, pts[0].Add(norm))
		} else {
			fwd, bwd = e.addJoin(fwd, bwd, pts[i], prevTan, tan, prevNorm, norm)
		}
		fwd = append(fwd, pts[i+1].Add(norm.Neg()))
		bwd = append(bwd, pts[i+1].Add(norm))
		prevTan, prevNorm = tan, norm
	}

	// Single contour: forward side, end cap, reversed backward side,
	// start cap (the closing segment back to the contour start).
	ring := fwd
	ring = e.addCap(ring, pts[n-1], prevNorm.Neg())
	for i := len(bwd) - 1; i >= 0; i-- {
		ring = append(ring, bwd[i])
	}
	ring = e.addCap(ring, pts[0], firstNorm)
	return [][]Point{ring}
}

func (e *Expander) expandClosed(pts []Point) [][]Point {
	halfW := 0.5 * e.opts.Width
	n := len(pts)
	fwd := make([]Point, 0, 2*n)
	bwd := make([]Point, 0, 2*n)

	var prevTan, prevNorm, firstTan, firstNorm Vec2
	for i := 0; i < n; i++ {
		next := pts[(i+1)%n]
		tan := next.Sub(pts[i])
		norm := tan.Perp().Normalize().Scale(halfW)
		if i == 0 {
			firstTan, firstNorm = tan, norm
			fwd = append(fwd, pts[0].Add(norm.Neg()))
			bwd = append(bwd, pts[0].Add(norm))
		} else {
			fwd, bwd = e.addJoin(fwd, bwd, pts[i], prevTan, tan, prevNorm, norm)
		}
		fwd = append(fwd, next.Add(norm.Neg()))
		bwd = append(bwd, next.Add(norm))
		prevTan, prevNorm = tan, norm
	}
	// Join where the last segment meets the first.
	fwd, bwd = e.addJoin(fwd, bwd, pts[0], prevTan, firstTan, prevNorm, firstNorm)

	inner := make([]Point, 0, len(bwd))
	for i := len(bwd) - 1; i >= 0; i-- {
		inner = append(inner, bwd[i])
	}
	return [][]Point{fwd, inner}
}

// addJoin emits the join geometry at vertex p between the segment with
// tangent prevTan and the segment with tangent tan, then starts the new
// segment by appending its offset points to both sides.
func (e *Expander) addJoin(fwd, bwd []Point, p Point, prevTan, tan, prevNorm, norm Vec2) ([]Point, []Point) {
	cross := prevTan.Cross(tan)
	dot := prevTan.Dot(tan)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: no join geometry, just keep the sides connected.
	if dot > 0 && math.Abs(cross) < hypot*1e-6 {
		fwd = append(fwd, p.Add(norm.Neg()))
		bwd = append(bwd, p.Add(norm))
		return fwd, bwd
	}

	switch e.opts.Join {
	case JoinBevel:
		// The segment offset points alone form the bevel.
	case JoinMiter:
		limitSq := e.opts.MiterLimit * e.opts.MiterLimit
		if 2.0*hypot < (hypot+dot)*limitSq {
			fwd, bwd = e.addMiterPoint(fwd, bwd, p, prevTan, tan, prevNorm, norm, cross)
		}
	case JoinRound:
		fwd, bwd = e.addRoundJoin(fwd, bwd, p, prevNorm, norm, cross, dot)
	}

	fwd = append(fwd, p.Add(norm.Neg()))
	bwd = append(bwd, p.Add(norm))
	return fwd, bwd
}

// addMiterPoint intersects the outer offset edges and appends the sharp
// corner on the outer side; the inner side pinches to the vertex itself.
func (e *Expander) addMiterPoint(fwd, bwd []Point, p Point, prevTan, tan, prevNorm, norm Vec2, cross float64) ([]Point, []Point) {
	if cross > 0 {
		// Outer corner on the forward side.
		last := p.Add(prevNorm.Neg())
		this := p.Add(norm.Neg())
		h := prevTan.Cross(this.Sub(last)) / cross
		fwd = append(fwd, this.Add(tan.Scale(-h)))
		bwd = append(bwd, p)
	} else if cross < 0 {
		last := p.Add(prevNorm)
		this := p.Add(norm)
		h := prevTan.Cross(this.Sub(last)) / cross
		bwd = append(bwd, this.Add(tan.Scale(-h)))
		fwd = append(fwd, p)
	}
	return fwd, bwd
}

// addRoundJoin sweeps a circular arc on the outer side from the previous
// segment's offset to the next segment's offset.
func (e *Expander) addRoundJoin(fwd, bwd []Point, p Point, prevNorm, norm Vec2, cross, dot float64) ([]Point, []Point) {
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		bwd = append(bwd, p.Add(norm))
		fwd = e.appendArc(fwd, p, prevNorm.Neg(), angle)
	} else {
		fwd = append(fwd, p.Add(norm.Neg()))
		bwd = e.appendArc(bwd, p, prevNorm, angle)
	}
	return fwd, bwd
}

// addCap appends cap geometry at center. The contour currently ends at
// center+from; the cap carries it around to center-from.
func (e *Expander) addCap(ring []Point, center Point, from Vec2) []Point {
	switch e.opts.Cap {
	case CapButt:
		// The straight segment to the opposite offset is the cap.
		ring = append(ring, center.Add(from.Neg()))
	case CapRound:
		ring = e.appendArc(ring, center, from, math.Pi)
	case CapSquare:
		ext := from.Perp()
		ring = append(ring, center.Add(from).Add(ext))
		ring = append(ring, center.Add(from.Neg()).Add(ext))
		ring = append(ring, center.Add(from.Neg()))
	}
	return ring
}

// appendArc samples an arc of the given signed sweep starting at
// center+start and appends the sample points, excluding the start.
func (e *Expander) appendArc(dst []Point, center Point, start Vec2, sweep float64) []Point {
	radius := start.Length()
	if radius < 1e-12 {
		return dst
	}
	steps := e.arcSteps(radius, sweep)
	a0 := start.Angle()
	for i := 1; i <= steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		dst = append(dst, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return dst
}

// arcSteps picks the segment count so chords deviate from the arc by at
// most the tolerance.
func (e *Expander) arcSteps(radius, sweep float64) int {
	if e.tolerance >= radius {
		return 1
	}
	step := 2 * math.Acos(1-e.tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	return n
}

// dot renders a degenerate (single-point) polyline according to the cap
// style: a disc for round caps, a square for square caps, nothing for
// butt caps.
func (e *Expander) dot(center Point) [][]Point {
	halfW := 0.5 * e.opts.Width
	switch e.opts.Cap {
	case CapRound:
		start := Vec2{X: halfW, Y: 0}
		ring := []Point{center.Add(start)}
		ring = e.appendArc(ring, center, start, 2*math.Pi)
		return [][]Point{ring}
	case CapSquare:
		return [][]Point{{
			{X: center.X - halfW, Y: center.Y - halfW},
			{X: center.X + halfW, Y: center.Y - halfW},
			{X: center.X + halfW, Y: center.Y + halfW},
			{X: center.X - halfW, Y: center.Y + halfW},
		}}
	}
	return nil
}

func dedupe(pts []Point) []Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
