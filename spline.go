package vg

// Catmull-Rom spline interpolation through an ordered point sequence.
// Each span between consecutive input points becomes a cubic segment whose
// tangents are estimated from the neighboring points. Endpoints use a
// duplicated-endpoint convention (no wrap-around), so the spline is defined
// for any sequence of two or more points.

// splineSegments is the fixed sample count per span. Fixed counts keep the
// output deterministic for matched-parameter constructions.
const splineSegments = 16

// CatmullRom returns a polyline passing exactly through every input point.
// tension in [0,1] tightens the curve: 0 is the standard Catmull-Rom
// spline, 1 degenerates to straight segments between the points.
//
// Fewer than 2 points returns nil; exactly 2 points degrade to a straight
// line.
func CatmullRom(points []Point, tension float64) []Point {
	if len(points) < 2 {
		return nil
	}
	if tension < 0 {
		tension = 0
	}
	if tension > 1 {
		tension = 1
	}

	out := make([]Point, 0, (len(points)-1)*splineSegments+1)
	out = append(out, points[0])

	scale := (1 - tension) / 2

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]

		// Duplicate endpoints in place of missing neighbors.
		p0 := p1
		if i > 0 {
			p0 = points[i-1]
		}
		p3 := p2
		if i+2 < len(points) {
			p3 = points[i+2]
		}

		// Tangents from neighbor differences, converted to Bezier
		// control points: C1 = P1 + m1/3, C2 = P2 - m2/3.
		m1 := p2.Sub(p0).Mul(scale)
		m2 := p3.Sub(p1).Mul(scale)

		seg := CubicBez{
			P0: p1,
			P1: p1.Add(m1.Div(3)),
			P2: p2.Sub(m2.Div(3)),
			P3: p2,
		}
		for j := 1; j <= splineSegments; j++ {
			out = append(out, seg.Eval(float64(j)/float64(splineSegments)))
		}
	}

	return out
}
