package vg

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Annotation helpers compose the line, rectangle, and text primitives
// into chart furniture: legends, axes, callouts, dimension lines, and
// brackets.

// DrawLegend draws a legend box at origin with one swatch row per entry.
// The box is sized from the swatch size, padding, and the widest label;
// labels are skipped when the style carries no glyph source.
func (c *Canvas) DrawLegend(origin Point, entries []LegendEntry, style LegendStyle) error {
	if !origin.IsFinite() {
		return ErrNonFiniteCoordinate
	}
	if len(entries) == 0 {
		return nil
	}
	swatch := style.SwatchSize
	if swatch <= 0 {
		swatch = 10
	}
	pad := math.Max(style.Padding, 0)
	gap := math.Max(style.Spacing, 0)

	labelW := 0.0
	if style.Glyphs != nil {
		for _, e := range entries {
			labelW = math.Max(labelW, measureText(style.Glyphs, e.Label))
		}
	}
	width := pad*2 + swatch
	if labelW > 0 {
		width += pad + labelW
	}
	height := pad*2 + float64(len(entries))*swatch + float64(len(entries)-1)*gap

	if err := c.DrawRect(NewRect(origin, origin.Add(Pt(width, height))), style.Box); err != nil {
		return err
	}

	rowY := origin.Y + pad
	for _, e := range entries {
		row := RectXYWH(origin.X+pad, rowY, swatch, swatch)
		if err := c.DrawRect(row, RectStyle{ShapeStyle: FillStyle(e.Swatch)}); err != nil {
			return err
		}
		if style.Glyphs != nil && e.Label != "" {
			base := Pt(origin.X+pad*2+swatch, rowY+swatch)
			baseline := lineCubic(base, Pt(base.X+labelW, base.Y))
			if err := c.DrawTextOnCurve(e.Label, baseline, style.Glyphs, style.Text, TextPathOptions{}); err != nil {
				return err
			}
		}
		rowY += swatch + gap
	}
	return nil
}

// DrawAxis draws an axis line with tick marks at the given fractional
// positions along it. Ticks extend perpendicular to the axis, on the
// side the perpendicular of from->to points at; fractions outside [0, 1]
// are skipped.
func (c *Canvas) DrawAxis(from, to Point, ticks []float64, style AxisStyle) error {
	if !from.IsFinite() || !to.IsFinite() {
		return ErrNonFiniteCoordinate
	}
	if err := c.DrawLine(from, to, style.Line); err != nil {
		return err
	}
	dir := to.Sub(from)
	length := dir.Length()
	if style.TickLength <= 0 || length == 0 {
		return nil
	}
	perp := dir.Div(length).Perp()

	tick := style.Line
	tick.StartArrow, tick.EndArrow = ArrowNone, ArrowNone
	tick.Dash = nil
	for _, t := range ticks {
		if math.IsNaN(t) || t < 0 || t > 1 {
			continue
		}
		p := from.Lerp(to, t)
		if err := c.DrawLine(p, p.Add(perp.Mul(style.TickLength)), tick); err != nil {
			return err
		}
	}
	return nil
}

// DrawCallout draws a label box and a leader line from the box edge to
// the target point. No leader is drawn when the target lies inside the
// box.
func (c *Canvas) DrawCallout(target Point, box Rect, style CalloutStyle) error {
	if !target.IsFinite() || !box.Min.IsFinite() || !box.Max.IsFinite() {
		return ErrNonFiniteCoordinate
	}
	if err := c.DrawRect(box, style.Box); err != nil {
		return err
	}
	anchor := Pt(
		math.Min(math.Max(target.X, box.Min.X), box.Max.X),
		math.Min(math.Max(target.Y, box.Min.Y), box.Max.Y),
	)
	if anchor == target {
		return nil
	}
	return c.DrawLine(anchor, target, style.Leader)
}

// DrawDimension draws a measurement between a and b. The dimension line
// runs parallel to the span at the style's offset and carries arrows at
// both ends (triangles unless the style names another kind); extension
// lines connect the measured points to it.
func (c *Canvas) DrawDimension(a, b Point, style DimensionStyle) error {
	if !a.IsFinite() || !b.IsFinite() || anyNaNInf(style.Offset, style.Extension) {
		return ErrNonFiniteCoordinate
	}
	dir := b.Sub(a)
	length := dir.Length()
	if length == 0 {
		return nil
	}
	perp := dir.Div(length).Perp()

	line := style.Line
	if line.StartArrow == ArrowNone && line.EndArrow == ArrowNone {
		line.StartArrow, line.EndArrow = ArrowTriangle, ArrowTriangle
	}
	off := perp.Mul(style.Offset)
	if err := c.DrawLine(a.Add(off), b.Add(off), line); err != nil {
		return err
	}

	reach := style.Offset
	if style.Extension > 0 {
		reach += math.Copysign(style.Extension, style.Offset)
	}
	if reach == 0 {
		return nil
	}
	ext := style.Line
	ext.StartArrow, ext.EndArrow = ArrowNone, ArrowNone
	ext.Dash = nil
	out := perp.Mul(reach)
	if err := c.DrawLine(a, a.Add(out), ext); err != nil {
		return err
	}
	return c.DrawLine(b, b.Add(out), ext)
}

// DrawBracket draws a square bracket spanning a to b: two arms reaching
// Depth away from the chord, joined by a spine.
func (c *Canvas) DrawBracket(a, b Point, style BracketStyle) error {
	if !a.IsFinite() || !b.IsFinite() || anyNaNInf(style.Depth) {
		return ErrNonFiniteCoordinate
	}
	if style.Width <= 0 || style.Depth == 0 {
		return nil
	}
	dir := b.Sub(a)
	length := dir.Length()
	if length == 0 {
		return nil
	}
	out := dir.Div(length).Perp().Mul(style.Depth)
	return c.DrawPolyline([]Point{a, a.Add(out), b.Add(out), b}, LineStyle{
		Paint: style.Paint,
		Width: style.Width,
	})
}

// lineCubic returns the straight segment from a to b as a cubic, for
// placing text along straight baselines.
func lineCubic(a, b Point) CubicBez {
	return CubicBez{P0: a, P1: a.Lerp(b, 1.0/3), P2: a.Lerp(b, 2.0/3), P3: b}
}

// measureText sums glyph advances after NFC normalization; runes without
// a glyph contribute nothing, matching their treatment during drawing.
func measureText(src GlyphSource, text string) float64 {
	total := 0.0
	for _, r := range norm.NFC.String(text) {
		if gm, ok := src.Glyph(r); ok {
			total += gm.Advance
		}
	}
	return total
}
