package vg

import "github.com/gogpu/vg/internal/blend"

// Source produces a color for every point of the plane. Fills sample the
// source once per covered pixel at the pixel center.
//
// Sources must be safe for concurrent reads once constructed.
type Source interface {
	// ColorAt returns the non-premultiplied color at the given point.
	ColorAt(x, y float64) RGBA
}

// Solid is a Source that returns the same color everywhere.
type Solid struct {
	Color RGBA
}

// NewSolid creates a solid color source.
func NewSolid(c RGBA) Solid {
	return Solid{Color: c}
}

// ColorAt implements the Source interface.
func (s Solid) ColorAt(x, y float64) RGBA {
	return s.Color
}

// FillRule determines which regions of a self-intersecting path count as
// inside.
type FillRule int

const (
	// FillRuleNonZero treats a point as inside when its winding number is
	// non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd treats a point as inside when an odd number of edges
	// cross a ray from it.
	FillRuleEvenOdd
)

// String returns the name of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// BlendMode determines how source colors combine with existing destination
// pixels.
type BlendMode = blend.Mode

const (
	// BlendNormal replaces the destination weighted by source alpha.
	BlendNormal = blend.Normal
	// BlendMultiply multiplies source and destination channels.
	BlendMultiply = blend.Multiply
	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen = blend.Screen
	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay = blend.Overlay
	// BlendSoftLight darkens or lightens depending on the source.
	BlendSoftLight = blend.SoftLight
)

// Paint describes how a fill or stroke is rendered: the color source, how
// it blends with the destination, and whether edges are anti-aliased.
type Paint struct {
	Source    Source
	BlendMode BlendMode
	AntiAlias bool
}

// NewPaint creates an anti-aliased normal-blend paint over the given
// source.
func NewPaint(src Source) Paint {
	return Paint{
		Source:    src,
		BlendMode: BlendNormal,
		AntiAlias: true,
	}
}

// SolidPaint creates an anti-aliased normal-blend paint of a single color.
func SolidPaint(c RGBA) Paint {
	return NewPaint(NewSolid(c))
}

// WithBlendMode returns a copy of the paint using the given blend mode.
func (p Paint) WithBlendMode(mode BlendMode) Paint {
	p.BlendMode = mode
	return p
}

// WithAntiAlias returns a copy of the paint with anti-aliasing toggled.
func (p Paint) WithAntiAlias(aa bool) Paint {
	p.AntiAlias = aa
	return p
}
