package vg

import "math"

// bandSegmentsFor picks a shared sample count for the two boundary curves
// of a band, scaled to the longer control polygon so wide bands stay
// smooth.
func bandSegmentsFor(top, bottom CubicBez) int {
	l := math.Max(controlPolygonLength(top), controlPolygonLength(bottom))
	n := int(math.Ceil(l / 4))
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	return n
}

func controlPolygonLength(c CubicBez) float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// BandPolygon builds the closed polygon between two boundary curves:
// the top curve walked forward, the bottom curve walked backward. Both
// curves are sampled at identical t values so corresponding samples pair
// up and the seam between them cannot open a gap or self-intersect at
// matched boundaries.
func BandPolygon(top, bottom CubicBez) []Point {
	n := bandSegmentsFor(top, bottom)
	tp := top.SampleN(n)
	bp := bottom.SampleN(n)

	poly := make([]Point, 0, 2*(n+1))
	poly = append(poly, tp...)
	for i := len(bp) - 1; i >= 0; i-- {
		poly = append(poly, bp[i])
	}
	return poly
}

// FillBand fills the area between two cubic curves, such as a Sankey flow
// ribbon between a top and bottom boundary.
func (c *Canvas) FillBand(top, bottom CubicBez, paint Paint) {
	c.FillPolygon(BandPolygon(top, bottom), FillRuleNonZero, paint)
}
