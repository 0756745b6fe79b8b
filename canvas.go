package vg

import (
	"image"

	"github.com/gogpu/vg/internal/blend"
	"github.com/gogpu/vg/internal/raster"
	istroke "github.com/gogpu/vg/internal/stroke"
)

// Canvas draws filled and stroked paths into a destination Surface. It
// holds no state beyond the destination and clip rectangle; all draw
// buffers are call-local.
//
// A Canvas is cheap to create per draw call. Canvases targeting different
// surfaces may draw in parallel; draws into the same surface must be
// serialized by the caller.
type Canvas struct {
	dst  Surface
	clip image.Rectangle
}

// NewCanvas creates a canvas covering the whole destination surface.
func NewCanvas(dst Surface) *Canvas {
	return &Canvas{dst: dst, clip: dst.Bounds()}
}

// WithClip returns a copy of the canvas restricted to the intersection of
// the given rectangle with the surface bounds.
func (c *Canvas) WithClip(r image.Rectangle) *Canvas {
	return &Canvas{dst: c.dst, clip: c.dst.Bounds().Intersect(r)}
}

// Clip returns the canvas's current clip rectangle.
func (c *Canvas) Clip() image.Rectangle {
	return c.clip
}

// FillPath fills the path with the paint. Every subpath is treated as
// closed; self-intersecting geometry is resolved by the fill rule.
func (c *Canvas) FillPath(p *Path, rule FillRule, paint Paint) {
	if p == nil || p.IsEmpty() || paint.Source == nil {
		return
	}
	subs := p.Flatten(FlattenTolerance)
	contours := make([][]Point, 0, len(subs))
	for _, s := range subs {
		contours = append(contours, s.Points)
	}
	c.fillContours(contours, rule, paint)
}

// StrokePath strokes the path's centerline with the given stroke style,
// filling the expanded outline with the paint.
func (c *Canvas) StrokePath(p *Path, stroke Stroke, paint Paint) {
	if p == nil || p.IsEmpty() || paint.Source == nil || stroke.Width <= 0 {
		return
	}

	exp := istroke.NewExpander(istroke.Options{
		Width:      stroke.Width,
		Cap:        istroke.Cap(stroke.Cap),
		Join:       istroke.Join(stroke.Join),
		MiterLimit: stroke.MiterLimit,
	})

	var contours [][]Point
	for _, sub := range p.Flatten(FlattenTolerance) {
		if len(sub.Points) == 0 {
			continue
		}
		if stroke.Dash != nil {
			for _, piece := range stroke.Dash.apply(sub.Points, sub.Closed) {
				contours = appendExpanded(contours, exp, piece, false)
			}
		} else {
			contours = appendExpanded(contours, exp, sub.Points, sub.Closed)
		}
	}

	// Stroke outlines self-overlap at joins; the non-zero rule keeps the
	// union filled exactly once.
	c.fillContours(contours, FillRuleNonZero, paint)
}

// FillPolygon fills a single vertex loop. The loop is implicitly closed.
func (c *Canvas) FillPolygon(pts []Point, rule FillRule, paint Paint) {
	if len(pts) < 3 || paint.Source == nil {
		return
	}
	c.fillContours([][]Point{pts}, rule, paint)
}

func appendExpanded(dst [][]Point, exp *istroke.Expander, pts []Point, closed bool) [][]Point {
	for _, ring := range exp.Expand(toStrokePoints(pts), closed) {
		dst = append(dst, fromStrokePoints(ring))
	}
	return dst
}

// fillContours rasterizes closed vertex loops and composites the paint
// through the coverage mask. Loops containing non-finite vertices are
// dropped before any edge is built.
func (c *Canvas) fillContours(contours [][]Point, rule FillRule, paint Paint) {
	if c.clip.Empty() {
		return
	}

	var edges []raster.Edge
	var bounds Rect
	haveBounds := false
	for _, pts := range contours {
		if !allFinite(pts) {
			Logger().Warn("vg: dropping contour with non-finite vertex")
			continue
		}
		if len(pts) == 0 {
			continue
		}
		if haveBounds {
			bounds = bounds.Union(boundsOfPoints(pts))
		} else {
			bounds, haveBounds = boundsOfPoints(pts), true
		}
		edges = appendEdges(edges, pts)
	}
	if len(edges) == 0 {
		return
	}

	// Restrict the rasterizer to the geometry's bounding box so small
	// shapes on large surfaces scan only their own rows.
	area := RectFromImage(c.clip).Intersect(bounds)
	if area.IsEmpty() {
		return
	}
	grid := area.Outset()

	r := raster.NewRasterizer(grid.Min.X, grid.Min.Y, grid.Max.X, grid.Max.Y)
	if paint.AntiAlias {
		r.FillAA(edges, rasterRule(rule), func(x, y, count int, alpha uint8) {
			cov := float64(alpha) / 255
			for i := 0; i < count; i++ {
				c.compositePixel(x+i, y, cov, paint)
			}
		})
	} else {
		r.Fill(edges, rasterRule(rule), func(y, x0, x1 int) {
			for x := x0; x < x1; x++ {
				c.compositePixel(x, y, 1, paint)
			}
		})
	}
}

// compositePixel samples the paint at the pixel center, blends it with the
// destination, and writes the result back.
func (c *Canvas) compositePixel(x, y int, coverage float64, paint Paint) {
	if coverage <= 0 {
		return
	}
	src := paint.Source.ColorAt(float64(x)+0.5, float64(y)+0.5)
	if src.A <= 0 {
		return
	}
	dst := c.dst.GetPixel(x, y)
	out := blend.CompositeOver(toBlendRGBA(src), toBlendRGBA(dst), coverage, paint.BlendMode)
	c.dst.SetPixel(x, y, fromBlendRGBA(out))
}

// appendEdges converts a vertex loop to edges, adding the implicit closing
// edge when the loop is not already closed. Horizontal and zero-length
// edges are dropped.
func appendEdges(edges []raster.Edge, pts []Point) []raster.Edge {
	n := len(pts)
	if n < 3 {
		return edges
	}
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		if e, ok := raster.NewEdge(raster.Point{X: a.X, Y: a.Y}, raster.Point{X: b.X, Y: b.Y}); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

func allFinite(pts []Point) bool {
	for _, p := range pts {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

func rasterRule(rule FillRule) raster.FillRule {
	if rule == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func toBlendRGBA(c RGBA) blend.RGBA {
	return blend.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromBlendRGBA(c blend.RGBA) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toStrokePoints(pts []Point) []istroke.Point {
	out := make([]istroke.Point, len(pts))
	for i, p := range pts {
		out[i] = istroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

func fromStrokePoints(pts []istroke.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
