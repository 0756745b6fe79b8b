package stroke

import (
	"math"
	"testing"
)

func containsPoint(ring []Point, want Point, eps float64) bool {
	for _, p := range ring {
		if math.Abs(p.X-want.X) < eps && math.Abs(p.Y-want.Y) < eps {
			return true
		}
	}
	return false
}

func ringBounds(ring []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range ring {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

func TestExpand_HorizontalLineButtCap(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 2
	e := NewExpander(opts)

	rings := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	if len(rings) != 1 {
		t.Fatalf("ring count = %d, want 1", len(rings))
	}
	ring := rings[0]
	for _, corner := range []Point{{0, -1}, {10, -1}, {10, 1}, {0, 1}} {
		if !containsPoint(ring, corner, 1e-9) {
			t.Errorf("outline missing corner %v", corner)
		}
	}
	minX, minY, maxX, maxY := ringBounds(ring)
	if minX < -1e-9 || maxX > 10+1e-9 || minY < -1-1e-9 || maxY > 1+1e-9 {
		t.Errorf("butt-capped outline exceeds shaft bounds: %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestExpand_SquareCapExtends(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 2
	opts.Cap = CapSquare
	e := NewExpander(opts)

	rings := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	minX, _, maxX, _ := ringBounds(rings[0])
	if math.Abs(minX-(-1)) > 1e-9 {
		t.Errorf("square cap start extent = %v, want -1", minX)
	}
	if math.Abs(maxX-11) > 1e-9 {
		t.Errorf("square cap end extent = %v, want 11", maxX)
	}
}

func TestExpand_RoundCapExtends(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 4
	opts.Cap = CapRound
	e := NewExpander(opts)

	rings := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	minX, _, maxX, _ := ringBounds(rings[0])
	if minX > -1.9 || minX < -2-1e-9 {
		t.Errorf("round cap start extent = %v, want about -2", minX)
	}
	if maxX < 11.9 || maxX > 12+1e-9 {
		t.Errorf("round cap end extent = %v, want about 12", maxX)
	}
}

func TestExpand_ClosedLoopTwoContours(t *testing.T) {
	e := NewExpander(Options{Width: 2, Join: JoinMiter, MiterLimit: 10})
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	rings := e.Expand(square, true)
	if len(rings) != 2 {
		t.Fatalf("closed stroke ring count = %d, want outer+inner", len(rings))
	}

	// Outer contour reaches the mitered outer corners, inner stays inside
	// the centerline square.
	outer, inner := rings[0], rings[1]
	for _, corner := range []Point{{-1, -1}, {11, -1}, {11, 11}, {-1, 11}} {
		if !containsPoint(outer, corner, 1e-9) {
			t.Errorf("outer contour missing mitered corner %v", corner)
		}
	}
	minX, minY, maxX, maxY := ringBounds(inner)
	if minX < -1e-9 || minY < -1e-9 || maxX > 10+1e-9 || maxY > 10+1e-9 {
		t.Errorf("inner contour leaves the centerline square: %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestExpand_MiterLimitFallsBackToBevel(t *testing.T) {
	// Nearly reversed segments: the miter would shoot far out; with a
	// small limit the join must stay near the vertex.
	sharp := []Point{{0, 0}, {10, 0}, {0, 0.5}}

	limited := NewExpander(Options{Width: 2, Join: JoinMiter, MiterLimit: 1.5})
	rings := limited.Expand(sharp, false)
	_, _, maxX, _ := ringBounds(rings[0])
	if maxX > 13 {
		t.Errorf("miter-limited join extends to x=%v, want bevel-like extent", maxX)
	}
}

func TestExpand_RoundJoinStaysWithinRadius(t *testing.T) {
	e := NewExpander(Options{Width: 2, Join: JoinRound, MiterLimit: 4})
	rings := e.Expand([]Point{{0, 0}, {10, 0}, {10, 10}}, false)
	ring := rings[0]

	// Every outline point lies within half-width of the centerline's
	// bounding box grown by the cap/join radius.
	for _, p := range ring {
		if p.X < -1-1e-9 || p.X > 11+1e-9 || p.Y < -1-1e-9 || p.Y > 11+1e-9 {
			t.Fatalf("round join point %v outside expected envelope", p)
		}
	}
}

func TestExpand_SinglePointDot(t *testing.T) {
	round := NewExpander(Options{Width: 4, Cap: CapRound})
	rings := round.Expand([]Point{{5, 5}}, false)
	if len(rings) != 1 {
		t.Fatalf("round dot ring count = %d, want 1", len(rings))
	}
	for _, p := range rings[0] {
		d := math.Hypot(p.X-5, p.Y-5)
		if math.Abs(d-2) > 0.01 {
			t.Fatalf("dot outline point %v at distance %v, want 2", p, d)
		}
	}

	butt := NewExpander(Options{Width: 4, Cap: CapButt})
	if rings := butt.Expand([]Point{{5, 5}}, false); rings != nil {
		t.Errorf("butt-capped dot should draw nothing, got %v", rings)
	}
}

func TestExpand_DuplicatePointsDropped(t *testing.T) {
	e := NewExpander(Options{Width: 2})
	a := e.Expand([]Point{{0, 0}, {0, 0}, {10, 0}, {10, 0}}, false)
	b := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	if len(a) != len(b) || len(a[0]) != len(b[0]) {
		t.Errorf("duplicate vertices changed the outline: %d/%d vs %d/%d rings/points",
			len(a), len(a[0]), len(b), len(b[0]))
	}
}
