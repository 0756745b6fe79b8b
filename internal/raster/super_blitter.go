// This file implements SuperBlitter for anti-aliased rendering via 4x
// vertical supersampling. Based on tiny-skia's path_aa.rs (Android/Skia
// heritage).
package raster

// SupersampleShift controls the supersampling level: 2 means 4x (1 << 2).
const SupersampleShift = 2

// SupersampleScale is the number of subpixel scanlines per pixel row.
const SupersampleScale = 1 << SupersampleShift

// SupersampleMask extracts subpixel coordinates.
const SupersampleMask = SupersampleScale - 1

// SpanFunc receives one horizontal run of pixels sharing the same coverage
// alpha. x is the first column, count the run length, alpha in 0-255.
type SpanFunc func(x, y, count int, alpha uint8)

// superBlitter accumulates supersampled coverage per pixel row and hands
// finished rows to a SpanFunc.
type superBlitter struct {
	blit SpanFunc
	runs *AlphaRuns

	// Region being blitted, in pixel space.
	left  int
	top   int
	width int

	// Left edge in supersampled space.
	superLeft int

	// Current destination pixel row; -1-ish sentinel below top.
	currIY int
	// Current supersampled scanline.
	currY int

	// Offset hint for AlphaRuns.Add.
	offsetX int
}

// newSuperBlitter creates a blitter for the pixel-space region
// [left, right) x [top, bottom). Returns nil for an empty region.
func newSuperBlitter(left, top, right, bottom int, blit SpanFunc) *superBlitter {
	width := right - left
	if width <= 0 || bottom <= top {
		return nil
	}
	return &superBlitter{
		blit:      blit,
		runs:      NewAlphaRuns(width),
		left:      left,
		top:       top,
		width:     width,
		superLeft: left << SupersampleShift,
		currIY:    top - 1,
		currY:     (top << SupersampleShift) - 1,
	}
}

// blitH accumulates one span at supersampled coordinates.
func (sb *superBlitter) blitH(x, y, width int) {
	if width <= 0 {
		return
	}

	iy := y >> SupersampleShift

	// Clip spans that start left of the region.
	if x < sb.superLeft {
		diff := sb.superLeft - x
		if diff >= width {
			return
		}
		width -= diff
		x = sb.superLeft
	}
	x -= sb.superLeft

	// Reset the offset hint on a new supersampled scanline.
	if sb.currY != y {
		sb.offsetX = 0
		sb.currY = y
	}

	// Flush when moving to a new pixel row.
	if iy != sb.currIY {
		sb.flush()
		sb.currIY = iy
	}

	start := x
	stop := x + width

	// Partial coverage for the first and last pixel of the span.
	fb := start & SupersampleMask
	fe := stop & SupersampleMask
	n := (stop >> SupersampleShift) - (start >> SupersampleShift) - 1

	if n < 0 {
		// Span starts and ends within the same pixel.
		fb = fe - fb
		n = 0
		fe = 0
	} else {
		if fb == 0 {
			n++
		} else {
			fb = SupersampleScale - fb
		}
	}

	// Per-scanline contribution of a fully covered pixel. Bounded to
	// 0-64 for SupersampleShift=2; four scanlines sum to 255 after
	// overflow correction.
	maxValue := uint8((1 << (8 - SupersampleShift)) - (((y & SupersampleMask) + 1) >> SupersampleShift))

	sb.offsetX = sb.runs.Add(
		start>>SupersampleShift,
		coverageToPartialAlpha(fb),
		n,
		coverageToPartialAlpha(fe),
		maxValue,
		sb.offsetX,
	)
}

// flush emits the accumulated coverage for the current pixel row.
func (sb *superBlitter) flush() {
	if sb.currIY < sb.top {
		return
	}
	if sb.runs.IsEmpty() {
		sb.currIY = sb.top - 1
		return
	}

	runs := sb.runs.Runs()
	alpha := sb.runs.Alpha()

	i := 0
	for runs[i] > 0 {
		runLen := int(runs[i])
		if a := alpha[i]; a > 0 {
			sb.blit(sb.left+i, sb.currIY, runLen, a)
		}
		i += runLen
		if i >= len(runs) {
			break
		}
	}

	sb.runs.Reset(sb.width)
	sb.offsetX = 0
	sb.currIY = sb.top - 1
}

// coverageToPartialAlpha converts fractional subpixel coverage (0-4) to an
// alpha contribution. AlphaRuns handles the 256 -> 255 clamp on
// accumulation.
func coverageToPartialAlpha(coverage int) uint8 {
	return uint8(coverage << (8 - 2*SupersampleShift))
}
