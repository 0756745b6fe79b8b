package vg

import "math"

// Shape helpers compose the path builder, stroker, and rasterizer into
// one-call chart primitives. All validation happens before any pixel is
// touched, so a failed call never leaves a partial shape behind.

// DrawLine draws a line from a to b, with optional dashing and arrow
// heads. Arrow heads are oriented along the line and layered after the
// shaft.
func (c *Canvas) DrawLine(a, b Point, style LineStyle) error {
	if !a.IsFinite() || !b.IsFinite() {
		return ErrNonFiniteCoordinate
	}
	if style.Width <= 0 {
		return nil
	}

	dir := b.Sub(a)
	length := dir.Length()

	shaftA, shaftB := a, b
	if length > 0 {
		// Pull the shaft back so it does not poke through filled heads.
		unit := dir.Div(length)
		if style.StartArrow != ArrowNone && style.StartArrow != ArrowOpen {
			shaftA = a.Add(unit.Mul(arrowInset(style.StartArrow, style.ArrowSize)))
		}
		if style.EndArrow != ArrowNone && style.EndArrow != ArrowOpen {
			shaftB = b.Sub(unit.Mul(arrowInset(style.EndArrow, style.ArrowSize)))
		}
	}

	stroke := NewStroke(style.Width).WithCap(style.Cap)
	stroke.Dash = style.Dash
	path := BuildPath().
		MoveTo(shaftA.X, shaftA.Y).
		LineTo(shaftB.X, shaftB.Y).
		MustBuild()
	c.StrokePath(path, stroke, style.Paint)

	if length > 0 {
		unit := dir.Div(length)
		if style.StartArrow != ArrowNone {
			c.drawArrowHead(a, unit.Neg(), style.StartArrow, style.ArrowSize, style.Width, style.Paint)
		}
		if style.EndArrow != ArrowNone {
			c.drawArrowHead(b, unit, style.EndArrow, style.ArrowSize, style.Width, style.Paint)
		}
	}
	return nil
}

// DrawPolyline strokes a polyline through the given points.
func (c *Canvas) DrawPolyline(pts []Point, style LineStyle) error {
	if len(pts) < 2 {
		return ErrNotEnoughPoints
	}
	if !allFinite(pts) {
		return ErrNonFiniteCoordinate
	}
	if style.Width <= 0 {
		return nil
	}
	stroke := NewStroke(style.Width).WithCap(style.Cap)
	stroke.Dash = style.Dash
	path := BuildPath().Polyline(pts).MustBuild()
	c.StrokePath(path, stroke, style.Paint)
	return nil
}

// DrawCircle draws a circle. Thick outlines are built as a ring polygon
// between two concentric circles rather than by stroking, which avoids
// artifacts at high curvature.
func (c *Canvas) DrawCircle(center Point, radius float64, style ShapeStyle) error {
	return c.DrawEllipse(center, radius, radius, style)
}

// DrawEllipse draws an axis-aligned ellipse.
func (c *Canvas) DrawEllipse(center Point, rx, ry float64, style ShapeStyle) error {
	if !center.IsFinite() || math.IsNaN(rx) || math.IsNaN(ry) || math.IsInf(rx, 0) || math.IsInf(ry, 0) {
		return ErrNonFiniteCoordinate
	}
	if rx <= 0 || ry <= 0 {
		return ErrInvalidRadius
	}

	if style.Fill != nil {
		path := BuildPath().Ellipse(center.X, center.Y, rx, ry).MustBuild()
		c.FillPath(path, FillRuleNonZero, *style.Fill)
	}
	if style.Stroke != nil && style.StrokeWidth > 0 {
		c.fillEllipseRing(center, rx, ry, style.StrokeWidth, *style.Stroke)
	}
	return nil
}

// fillEllipseRing fills the annulus between the ellipse grown and shrunk
// by half the outline width. The inner contour runs in the opposite
// direction so the non-zero rule leaves only the ring.
func (c *Canvas) fillEllipseRing(center Point, rx, ry, width float64, paint Paint) {
	halfW := width / 2
	outer := ellipseLoop(center, rx+halfW, ry+halfW)
	contours := [][]Point{outer}

	irx, iry := rx-halfW, ry-halfW
	if irx > 0 && iry > 0 {
		inner := ellipseLoop(center, irx, iry)
		reversePoints(inner)
		contours = append(contours, inner)
	}
	c.fillContours(contours, FillRuleNonZero, paint)
}

func ellipseLoop(center Point, rx, ry float64) []Point {
	n := ArcSegments(math.Max(rx, ry), 2*math.Pi)
	loop := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		loop = append(loop, Point{
			X: center.X + rx*math.Cos(a),
			Y: center.Y + ry*math.Sin(a),
		})
	}
	return loop
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// DrawRect draws a rectangle, rounding any corner whose radius is
// positive.
func (c *Canvas) DrawRect(r Rect, style RectStyle) error {
	if !r.Min.IsFinite() || !r.Max.IsFinite() {
		return ErrNonFiniteCoordinate
	}
	if r.IsEmpty() {
		return nil
	}

	build := func() *Path {
		return BuildPath().
			RoundRectCorners(r.Min.X, r.Min.Y, r.Width(), r.Height(), style.Radii).
			MustBuild()
	}
	if style.Fill != nil {
		c.FillPath(build(), FillRuleNonZero, *style.Fill)
	}
	if style.Stroke != nil && style.StrokeWidth > 0 {
		c.StrokePath(build(), NewStroke(style.StrokeWidth), *style.Stroke)
	}
	return nil
}

// DrawRegularPolygon draws a regular polygon with the given number of
// sides, the first vertex at the rotation angle (radians).
func (c *Canvas) DrawRegularPolygon(center Point, radius float64, sides int, rotation float64, style ShapeStyle) error {
	if sides < 3 {
		return ErrNotEnoughPoints
	}
	if !center.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) || math.IsNaN(rotation) {
		return ErrNonFiniteCoordinate
	}
	if radius <= 0 {
		return ErrInvalidRadius
	}

	pts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		a := rotation + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	c.drawLoop(pts, style)
	return nil
}

// DrawArc draws an open arc from angle a0 to a1 (radians, signed, not
// normalized; sweeps past a full turn are allowed). The arc is built as a
// ring polygon between the inner and outer radius.
func (c *Canvas) DrawArc(center Point, radius, a0, a1 float64, style ArcStyle) error {
	if !center.IsFinite() || anyNaNInf(radius, a0, a1) {
		return ErrNonFiniteCoordinate
	}
	if radius <= 0 {
		return ErrInvalidRadius
	}
	if style.Width <= 0 || a0 == a1 {
		return nil
	}

	halfW := style.Width / 2
	outer := ArcPoints(center, radius+halfW, a0, a1)
	ring := outer
	if inner := radius - halfW; inner > 0 {
		back := ArcPoints(center, inner, a1, a0)
		ring = append(ring, back...)
	} else {
		ring = append(ring, center)
	}
	c.FillPolygon(ring, FillRuleNonZero, style.Paint)
	return nil
}

// DrawPie draws a filled circular sector: two radius lines joined by an
// arc.
func (c *Canvas) DrawPie(center Point, radius, a0, a1 float64, style ShapeStyle) error {
	if !center.IsFinite() || anyNaNInf(radius, a0, a1) {
		return ErrNonFiniteCoordinate
	}
	if radius <= 0 {
		return ErrInvalidRadius
	}
	if a0 == a1 {
		return nil
	}

	arc := ArcPoints(center, radius, a0, a1)
	loop := make([]Point, 0, len(arc)+1)
	loop = append(loop, center)
	loop = append(loop, arc...)
	c.drawLoop(loop, style)
	return nil
}

// DrawMarker draws a data point marker centered at p.
func (c *Canvas) DrawMarker(p Point, style MarkerStyle) error {
	if !p.IsFinite() || anyNaNInf(style.Size) {
		return ErrNonFiniteCoordinate
	}
	if style.Size <= 0 {
		return nil
	}
	loop := markerLoop(style.Kind, p, style.Size)
	if loop == nil {
		return nil
	}
	c.drawLoop(loop, style.ShapeStyle)
	return nil
}

// markerLoop returns the marker's outline as a closed loop. Coordinates
// are exact so markers of the same kind and size are pixel-identical
// wherever they are placed on integer centers.
func markerLoop(kind MarkerKind, p Point, size float64) []Point {
	h := size / 2
	switch kind {
	case MarkerSquare:
		return []Point{
			{p.X - h, p.Y - h}, {p.X + h, p.Y - h},
			{p.X + h, p.Y + h}, {p.X - h, p.Y + h},
		}
	case MarkerDiamond:
		return []Point{
			{p.X, p.Y - h}, {p.X + h, p.Y},
			{p.X, p.Y + h}, {p.X - h, p.Y},
		}
	case MarkerTriangle:
		return []Point{
			{p.X, p.Y - h}, {p.X + h, p.Y + h}, {p.X - h, p.Y + h},
		}
	case MarkerStar:
		return starLoop(p, h, h*0.4, 5)
	case MarkerPlus:
		t := h / 3
		return []Point{
			{p.X - t, p.Y - h}, {p.X + t, p.Y - h}, {p.X + t, p.Y - t},
			{p.X + h, p.Y - t}, {p.X + h, p.Y + t}, {p.X + t, p.Y + t},
			{p.X + t, p.Y + h}, {p.X - t, p.Y + h}, {p.X - t, p.Y + t},
			{p.X - h, p.Y + t}, {p.X - h, p.Y - t}, {p.X - t, p.Y - t},
		}
	case MarkerCross:
		plus := markerLoop(MarkerPlus, Point{}, size)
		out := make([]Point, len(plus))
		s, cs := math.Sin(math.Pi/4), math.Cos(math.Pi/4)
		for i, q := range plus {
			out[i] = Point{
				X: p.X + q.X*cs - q.Y*s,
				Y: p.Y + q.X*s + q.Y*cs,
			}
		}
		return out
	default:
		return nil
	}
}

func starLoop(center Point, outer, inner float64, points int) []Point {
	loop := make([]Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(points)
		loop = append(loop, Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	return loop
}

// drawLoop fills and/or strokes a closed vertex loop per the style.
func (c *Canvas) drawLoop(pts []Point, style ShapeStyle) {
	if style.Fill != nil {
		c.FillPolygon(pts, FillRuleNonZero, *style.Fill)
	}
	if style.Stroke != nil && style.StrokeWidth > 0 {
		path := BuildPath().Polyline(pts).Close().MustBuild()
		c.StrokePath(path, NewStroke(style.StrokeWidth), *style.Stroke)
	}
}

// arrowInset is how far a filled arrow head covers the shaft, used to
// shorten the shaft so it does not show through translucent heads.
func arrowInset(kind ArrowKind, size float64) float64 {
	switch kind {
	case ArrowTriangle, ArrowStealth:
		return size * 0.8
	case ArrowDiamond, ArrowCircle:
		return size * 0.5
	default:
		return 0
	}
}

// drawArrowHead places an arrow head at tip, pointing along the unit
// vector dir.
func (c *Canvas) drawArrowHead(tip, dir Point, kind ArrowKind, size, lineWidth float64, paint Paint) {
	if size <= 0 {
		size = lineWidth * 4
	}
	perp := dir.Perp()
	back := tip.Sub(dir.Mul(size))

	switch kind {
	case ArrowTriangle:
		c.FillPolygon([]Point{
			tip,
			back.Add(perp.Mul(size / 2)),
			back.Sub(perp.Mul(size / 2)),
		}, FillRuleNonZero, paint)

	case ArrowOpen:
		stroke := NewStroke(lineWidth).WithCap(CapRound)
		barb1 := back.Add(perp.Mul(size / 2))
		barb2 := back.Sub(perp.Mul(size / 2))
		path := BuildPath().
			MoveTo(barb1.X, barb1.Y).
			LineTo(tip.X, tip.Y).
			LineTo(barb2.X, barb2.Y).
			MustBuild()
		c.StrokePath(path, stroke, paint)

	case ArrowStealth:
		notch := tip.Sub(dir.Mul(size * 0.6))
		c.FillPolygon([]Point{
			tip,
			back.Add(perp.Mul(size / 2)),
			notch,
			back.Sub(perp.Mul(size / 2)),
		}, FillRuleNonZero, paint)

	case ArrowDiamond:
		mid := tip.Sub(dir.Mul(size / 2))
		c.FillPolygon([]Point{
			tip,
			mid.Add(perp.Mul(size / 2)),
			tip.Sub(dir.Mul(size)),
			mid.Sub(perp.Mul(size / 2)),
		}, FillRuleNonZero, paint)

	case ArrowCircle:
		center := tip.Sub(dir.Mul(size / 2))
		c.FillPolygon(ArcPoints(center, size/2, 0, 2*math.Pi), FillRuleNonZero, paint)
	}
}

func anyNaNInf(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
