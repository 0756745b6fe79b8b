package vg

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// GlyphMask is a pre-rasterized glyph: a coverage mask plus the metrics
// needed to place it. The engine never interprets font tables; glyphs
// arrive as opaque blittable shapes.
type GlyphMask struct {
	Alpha  []uint8 // row-major coverage, Width*Height entries
	Width  int
	Height int

	// OriginX, OriginY locate the glyph origin (baseline point) inside
	// the mask.
	OriginX, OriginY float64

	// Advance is the pen advance to the next glyph, in pixels.
	Advance float64
}

// GlyphSource supplies a mask per rune. Implementations must be safe for
// concurrent reads if the caller draws from multiple goroutines.
type GlyphSource interface {
	// Glyph returns the mask for r, or ok=false when the source has no
	// glyph for it.
	Glyph(r rune) (GlyphMask, bool)
}

// FaceGlyphSource adapts a font.Face (for example basicfont.Face7x13 or
// an opentype face) into a GlyphSource.
//
// font.Face implementations are not safe for concurrent use, so neither
// is this adapter.
type FaceGlyphSource struct {
	face font.Face
}

// NewFaceGlyphSource wraps a font.Face.
func NewFaceGlyphSource(face font.Face) *FaceGlyphSource {
	return &FaceGlyphSource{face: face}
}

// Glyph implements the GlyphSource interface.
func (s *FaceGlyphSource) Glyph(r rune) (GlyphMask, bool) {
	dr, mask, maskp, adv, ok := s.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return GlyphMask{}, false
	}

	w, h := dr.Dx(), dr.Dy()
	gm := GlyphMask{
		Alpha:   make([]uint8, w*h),
		Width:   w,
		Height:  h,
		OriginX: float64(-dr.Min.X),
		OriginY: float64(-dr.Min.Y),
		Advance: float64(adv) / 64,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			gm.Alpha[y*w+x] = uint8(a >> 8)
		}
	}
	return gm, true
}

// TextPathOptions configures text-on-curve placement.
type TextPathOptions struct {
	// Offset displaces glyphs perpendicular to the curve; negative moves
	// against the perpendicular (toward the inside of a left-turning
	// curve).
	Offset float64

	// Spacing is extra arc length inserted between glyphs.
	Spacing float64

	// Start is the arc length at which the first glyph begins.
	Start float64
}

// DrawTextOnCurve places the text along the curve. Glyphs are positioned
// at arc-length intervals given by their advances (not uniform parameter
// steps, which would bunch glyphs where the curve moves slowly) and
// rotated to the local tangent. Text is normalized to NFC first so
// decomposed input renders the same as composed input. Glyphs past the
// end of the curve are not drawn.
func (c *Canvas) DrawTextOnCurve(text string, curve CubicBez, src GlyphSource, paint Paint, opts TextPathOptions) error {
	if src == nil || paint.Source == nil {
		return nil
	}
	for _, p := range []Point{curve.P0, curve.P1, curve.P2, curve.P3} {
		if !p.IsFinite() {
			return ErrNonFiniteCoordinate
		}
	}

	pts := curve.Flatten(FlattenTolerance, []Point{curve.P0})
	walk := newArcWalk(pts)
	if walk.total <= 0 {
		return nil
	}

	pen := opts.Start
	for _, r := range norm.NFC.String(text) {
		gm, ok := src.Glyph(r)
		if !ok {
			continue
		}
		mid := pen + gm.Advance/2
		if mid > walk.total {
			break
		}
		pos, tan := walk.at(mid)
		c.blitGlyph(gm, pos, tan.Angle(), opts.Offset, paint)
		pen += gm.Advance + opts.Spacing
	}
	return nil
}

// arcWalk indexes a polyline by cumulative arc length.
type arcWalk struct {
	pts   []Point
	cum   []float64
	total float64
}

func newArcWalk(pts []Point) *arcWalk {
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i-1].Distance(pts[i])
	}
	total := 0.0
	if len(cum) > 0 {
		total = cum[len(cum)-1]
	}
	return &arcWalk{pts: pts, cum: cum, total: total}
}

// at returns the point and unit tangent at the given arc length, clamped
// to the polyline's extent.
func (w *arcWalk) at(s float64) (Point, Point) {
	if s <= 0 {
		return w.pts[0], w.segmentTangent(0)
	}
	if s >= w.total {
		last := len(w.pts) - 1
		return w.pts[last], w.segmentTangent(last - 1)
	}

	// cum is monotonically nondecreasing; find the containing segment.
	lo, hi := 0, len(w.cum)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if w.cum[mid] <= s {
			lo = mid
		} else {
			hi = mid
		}
	}
	segLen := w.cum[hi] - w.cum[lo]
	t := 0.0
	if segLen > 0 {
		t = (s - w.cum[lo]) / segLen
	}
	return w.pts[lo].Lerp(w.pts[hi], t), w.segmentTangent(lo)
}

func (w *arcWalk) segmentTangent(i int) Point {
	if i < 0 {
		i = 0
	}
	for i+1 < len(w.pts) {
		d := w.pts[i+1].Sub(w.pts[i])
		if d.LengthSquared() > 0 {
			return d.Normalize()
		}
		i++
	}
	return Point{X: 1, Y: 0}
}

// blitGlyph composites a glyph mask rotated by angle with its origin at
// pos, shifted by offset along the rotated perpendicular. Destination
// pixels are inverse-mapped into mask space with nearest sampling.
func (c *Canvas) blitGlyph(gm GlyphMask, pos Point, angle, offset float64, paint Paint) {
	if gm.Width <= 0 || gm.Height <= 0 {
		return
	}
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	// Destination bounding box from the mask's rotated corners.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4]Point{
		{0, 0},
		{float64(gm.Width), 0},
		{0, float64(gm.Height)},
		{float64(gm.Width), float64(gm.Height)},
	} {
		lx := corner.X - gm.OriginX
		ly := corner.Y - gm.OriginY + offset
		dx := pos.X + lx*cosA - ly*sinA
		dy := pos.Y + lx*sinA + ly*cosA
		minX = math.Min(minX, dx)
		minY = math.Min(minY, dy)
		maxX = math.Max(maxX, dx)
		maxY = math.Max(maxY, dy)
	}

	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.clip)

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := float64(x) + 0.5 - pos.X
			dy := float64(y) + 0.5 - pos.Y
			lx := dx*cosA + dy*sinA
			ly := -dx*sinA + dy*cosA
			gx := int(math.Floor(lx + gm.OriginX))
			gy := int(math.Floor(ly + gm.OriginY - offset))
			if gx < 0 || gx >= gm.Width || gy < 0 || gy >= gm.Height {
				continue
			}
			a := gm.Alpha[gy*gm.Width+gx]
			if a == 0 {
				continue
			}
			c.compositePixel(x, y, float64(a)/255, paint)
		}
	}
}
