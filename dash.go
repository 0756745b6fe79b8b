package vg

// Dash is an alternating on/off pattern walked along a polyline's arc
// length. Each on-segment becomes its own sub-polyline, stroked
// independently.
type Dash struct {
	Length float64 // drawn length
	Gap    float64 // skipped length
}

// DashPreset names a (dash length, gap, stroke width) triple.
type DashPreset struct {
	Length float64
	Gap    float64
	Width  float64
}

// Common dash presets.
var (
	DashDotted   = DashPreset{Length: 1, Gap: 2, Width: 1}
	DashDashed   = DashPreset{Length: 4, Gap: 4, Width: 1}
	DashLongDash = DashPreset{Length: 8, Gap: 4, Width: 1}
)

// Stroke returns a stroke configured from the preset.
func (p DashPreset) Stroke() Stroke {
	s := NewStroke(p.Width)
	s.Dash = &Dash{Length: p.Length, Gap: p.Gap}
	return s
}

// apply splits a polyline into dash pieces. A closed polyline is walked as
// an open loop with the closing segment appended; the pattern always
// starts in the on phase at the first vertex. A non-positive dash length
// or negative gap disables dashing.
func (d Dash) apply(pts []Point, closed bool) [][]Point {
	if d.Length <= 0 || d.Gap < 0 || len(pts) < 2 {
		return [][]Point{pts}
	}
	if closed && pts[0] != pts[len(pts)-1] {
		loop := make([]Point, 0, len(pts)+1)
		loop = append(loop, pts...)
		loop = append(loop, pts[0])
		pts = loop
	}

	var out [][]Point
	var cur []Point
	on := true
	remain := d.Length

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		if on && len(cur) == 0 {
			cur = append(cur, a)
		}
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			p := a.Lerp(b, pos/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, cur)
				cur = nil
				remain = d.Gap
			} else {
				cur = []Point{p}
				remain = d.Length
			}
			on = !on
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) >= 2 {
		out = append(out, cur)
	}
	return out
}
