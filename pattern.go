package vg

import "math"

// HatchStyle selects the repeating figure of a hatch pattern.
type HatchStyle int

const (
	// HatchHorizontal draws horizontal lines.
	HatchHorizontal HatchStyle = iota
	// HatchDiagonal draws 45-degree lines.
	HatchDiagonal
	// HatchCross draws a grid of horizontal and vertical lines.
	HatchCross
	// HatchDots draws a grid of filled dots.
	HatchDots
)

// Hatch is a tileable Source: a stateless function of absolute pixel
// coordinate, so pattern lines stay aligned across separately filled
// shapes. Points on the pattern figure take the foreground color,
// everything else the background.
type Hatch struct {
	style     HatchStyle
	fg, bg    RGBA
	spacing   float64
	thickness float64
}

// NewHatch creates a hatch pattern. Spacing is the tile period,
// thickness the line width (or dot diameter); thickness must be positive
// and smaller than the spacing.
func NewHatch(style HatchStyle, fg, bg RGBA, spacing, thickness float64) (*Hatch, error) {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) ||
		math.IsNaN(thickness) || math.IsInf(thickness, 0) {
		return nil, ErrInvalidPattern
	}
	if spacing <= 0 || thickness <= 0 || thickness >= spacing {
		return nil, ErrInvalidPattern
	}
	return &Hatch{
		style:     style,
		fg:        fg,
		bg:        bg,
		spacing:   spacing,
		thickness: thickness,
	}, nil
}

// ColorAt implements the Source interface.
func (h *Hatch) ColorAt(x, y float64) RGBA {
	if h.hit(x, y) {
		return h.fg
	}
	return h.bg
}

func (h *Hatch) hit(x, y float64) bool {
	switch h.style {
	case HatchHorizontal:
		return wrap(y, h.spacing) < h.thickness
	case HatchDiagonal:
		// Lines along x = y; distance between them is spacing along
		// the x axis.
		return wrap(x-y, h.spacing) < h.thickness
	case HatchCross:
		return wrap(x, h.spacing) < h.thickness || wrap(y, h.spacing) < h.thickness
	case HatchDots:
		half := h.spacing * 0.5
		dx := wrap(x, h.spacing) - half
		dy := wrap(y, h.spacing) - half
		r := h.thickness * 0.5
		return dx*dx+dy*dy <= r*r
	default:
		return false
	}
}

// wrap maps v into [0, period), handling negatives.
func wrap(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
