package vg

import (
	"math"
	"sort"
)

// ColorStop pairs a position along a gradient with a color. Offsets are in
// [0, 1]; out-of-range offsets are clamped at construction.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// ExtendMode determines how a gradient behaves outside its defined span.
type ExtendMode int

const (
	// ExtendPad continues the nearest endpoint color.
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the gradient.
	ExtendRepeat
	// ExtendReflect tiles the gradient, mirroring every other tile.
	ExtendReflect
)

// normalizeStops validates, clamps, and sorts a stop list. The input slice
// is not modified.
func normalizeStops(in []ColorStop) ([]ColorStop, error) {
	if len(in) == 0 {
		return nil, ErrNoColorStops
	}
	out := make([]ColorStop, len(in))
	for i, s := range in {
		if math.IsNaN(s.Offset) {
			return nil, ErrNonFiniteCoordinate
		}
		s.Offset = math.Min(math.Max(s.Offset, 0), 1)
		out[i] = s
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out, nil
}

// colorAtOffset interpolates the stop list at t. Positions before the
// first stop or after the last take that stop's color; between adjacent
// stops each channel is interpolated linearly. stops must be sorted and
// non-empty.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := len(stops) - 1
	if t >= stops[last].Offset {
		return stops[last].Color
	}

	// Binary search for the first stop past t.
	hi := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > t
	})
	s0, s1 := stops[hi-1], stops[hi]

	span := s1.Offset - s0.Offset
	if span <= 0 {
		return s1.Color
	}
	return s0.Color.Lerp(s1.Color, (t-s0.Offset)/span)
}

// applyExtend maps an unbounded gradient position into [0, 1] according to
// the extend mode.
func applyExtend(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		return t
	case ExtendReflect:
		t = math.Abs(t)
		t = math.Mod(t, 2)
		if t > 1 {
			t = 2 - t
		}
		return t
	default: // ExtendPad
		return math.Min(math.Max(t, 0), 1)
	}
}
