// Package raster provides scanline rasterization of polygon edge lists
// into fractional pixel coverage.
package raster

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer converts edge lists into coverage spans within a clip
// rectangle. It holds only transient per-call buffers and is not safe for
// concurrent use; callers create one per draw call or serialize access.
type Rasterizer struct {
	clipL, clipT, clipR, clipB int
	aet                        *activeEdgeTable
}

// NewRasterizer creates a rasterizer for the clip rectangle
// [left, right) x [top, bottom) in pixel coordinates.
func NewRasterizer(left, top, right, bottom int) *Rasterizer {
	return &Rasterizer{
		clipL: left,
		clipT: top,
		clipR: right,
		clipB: bottom,
		aet:   newActiveEdgeTable(),
	}
}

// clampBounds intersects the edge bounding box with the clip rectangle.
// ok is false when the geometry lies entirely outside the clip; no
// per-pixel work happens in that case.
func (r *Rasterizer) clampBounds(edges []Edge) (left, top, right, bottom int, ok bool) {
	minX, minY, maxX, maxY, any := Bounds(edges)
	if !any {
		return 0, 0, 0, 0, false
	}

	left = max(int(math.Floor(minX)), r.clipL)
	top = max(int(math.Floor(minY)), r.clipT)
	right = min(int(math.Ceil(maxX)), r.clipR)
	bottom = min(int(math.Ceil(maxY)), r.clipB)

	if left >= right || top >= bottom {
		return 0, 0, 0, 0, false
	}
	return left, top, right, bottom, true
}

// FillAA rasterizes the edge list with anti-aliasing, delivering coverage
// spans in 0-255 to blit. Coverage is computed by supersampling each
// pixel's vertical extent against the edge crossings (4 subpixel scanlines
// per row), not by a single point-in-polygon test.
func (r *Rasterizer) FillAA(edges []Edge, rule FillRule, blit SpanFunc) {
	left, top, right, bottom, ok := r.clampBounds(edges)
	if !ok {
		return
	}

	sb := newSuperBlitter(left, top, right, bottom, blit)
	if sb == nil {
		return
	}

	superYMin := top << SupersampleShift
	superYMax := bottom << SupersampleShift

	for superY := superYMin; superY < superYMax; superY++ {
		scanY := (float64(superY) + 0.5) / float64(SupersampleScale)
		active := r.aet.gather(edges, scanY)
		if len(active) == 0 {
			continue
		}
		r.spansAt(active, rule, func(x0, x1 float64) {
			blitSpanAA(sb, x0, x1, superY, left, right)
		})
	}

	sb.flush()
}

// Fill rasterizes the edge list without anti-aliasing: a pixel is covered
// iff its center lies inside the shape. Covered spans [x0, x1) are
// delivered per row.
func (r *Rasterizer) Fill(edges []Edge, rule FillRule, span func(y, x0, x1 int)) {
	left, top, right, bottom, ok := r.clampBounds(edges)
	if !ok {
		return
	}

	for y := top; y < bottom; y++ {
		scanY := float64(y) + 0.5
		active := r.aet.gather(edges, scanY)
		if len(active) == 0 {
			continue
		}
		r.spansAt(active, rule, func(fx0, fx1 float64) {
			// Pixel-center test: column x is inside iff
			// fx0 <= x+0.5 < fx1.
			x0 := int(math.Ceil(fx0 - 0.5))
			x1 := int(math.Ceil(fx1 - 0.5))
			if x0 < left {
				x0 = left
			}
			if x1 > right {
				x1 = right
			}
			if x0 < x1 {
				span(y, x0, x1)
			}
		})
	}
}

// spansAt walks the sorted active edges and emits interior spans according
// to the fill rule. Self-intersecting geometry is decided purely by the
// accumulated crossing counts; the geometry is never altered.
func (r *Rasterizer) spansAt(active []ActiveEdge, rule FillRule, emit func(x0, x1 float64)) {
	if rule == FillRuleNonZero {
		winding := 0
		var x0 float64
		for _, e := range active {
			if winding == 0 {
				x0 = e.x
			}
			winding += e.dir
			if winding == 0 {
				emit(x0, e.x)
			}
		}
		return
	}

	for i := 0; i+1 < len(active); i += 2 {
		emit(active[i].x, active[i+1].x)
	}
}

// blitSpanAA converts a pixel-space span to supersampled coordinates,
// clamps it to the blitter's region, and feeds it to the super blitter.
func blitSpanAA(sb *superBlitter, x0, x1 float64, superY, left, right int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < float64(left) {
		x0 = float64(left)
	}
	if x1 > float64(right) {
		x1 = float64(right)
	}

	superX0 := int(x0 * SupersampleScale)
	superX1 := int(x1 * SupersampleScale)
	if superX0 >= superX1 {
		return
	}

	sb.blitH(superX0, superY, superX1-superX0)
}
