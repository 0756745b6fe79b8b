package vg

// LineCap specifies the shape at the ends of an open stroke.
type LineCap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt LineCap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
	// CapSquare extends the stroke by half its width, then ends flat.
	CapSquare
)

// LineJoin specifies the shape where two stroke segments meet.
type LineJoin int

const (
	// JoinMiter extends the outer edges to a sharp point, subject to the
	// miter limit.
	JoinMiter LineJoin = iota
	// JoinRound connects the outer edges with a circular arc.
	JoinRound
	// JoinBevel connects the outer edges with a straight line.
	JoinBevel
)

// Stroke describes how a centerline is expanded into a drawable outline.
// The zero value is not useful; construct with NewStroke.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *Dash
}

// NewStroke creates a stroke of the given width. Joins default to round,
// which avoids gap artifacts at sharp turns in sampled curves.
func NewStroke(width float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        CapButt,
		Join:       JoinRound,
		MiterLimit: 4.0,
	}
}

// WithCap returns a copy of the stroke with the given cap.
func (s Stroke) WithCap(c LineCap) Stroke {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the stroke with the given join.
func (s Stroke) WithJoin(j LineJoin) Stroke {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy of the stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the stroke using the given dash pattern.
func (s Stroke) WithDash(d Dash) Stroke {
	s.Dash = &d
	return s
}
