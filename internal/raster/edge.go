package raster

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge represents a line segment prepared for scanline rasterization.
// Edges are stored with y0 < y1; dir records the original winding.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dx     float64 // dx/dy slope
	dir    int     // +1 or -1
}

// NewEdge creates an edge from two points. The second return value is
// false for horizontal (or near-horizontal) segments, which contribute no
// scanline crossings and are skipped.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if math.Abs(p1.Y-p0.Y) < 1e-9 {
		return Edge{}, false
	}

	// Direction is taken before the swap so the non-zero winding rule
	// sees the original orientation.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dx:  (p1.X - p0.X) / (p1.Y - p0.Y),
		dir: dir,
	}, true
}

// XAtY calculates the x coordinate where the edge crosses the given y.
func (e *Edge) XAtY(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// Bounds returns the bounding box of a set of edges. ok is false when the
// set is empty.
func Bounds(edges []Edge) (minX, minY, maxX, maxY float64, ok bool) {
	if len(edges) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		minY = math.Min(minY, e.y0)
		maxY = math.Max(maxY, e.y1)
		minX = math.Min(minX, math.Min(e.x0, e.x1))
		maxX = math.Max(maxX, math.Max(e.x0, e.x1))
	}
	return minX, minY, maxX, maxY, true
}

// ActiveEdge is an edge currently crossing the scanline being processed.
type ActiveEdge struct {
	x   float64 // x position at the current scanline
	dir int
}

// activeEdgeTable collects and sorts the edges crossing one scanline.
type activeEdgeTable struct {
	edges []ActiveEdge
}

func newActiveEdgeTable() *activeEdgeTable {
	return &activeEdgeTable{
		edges: make([]ActiveEdge, 0, 32),
	}
}

// gather rebuilds the table with the edges crossing scanline y, with x
// computed at that y, sorted by x. Insertion sort: the table is small and
// nearly sorted between adjacent scanlines.
func (aet *activeEdgeTable) gather(edges []Edge, y float64) []ActiveEdge {
	aet.edges = aet.edges[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= y && y < e.y1 {
			aet.edges = append(aet.edges, ActiveEdge{x: e.XAtY(y), dir: e.dir})
		}
	}

	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].x > key.x {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
	return aet.edges
}
