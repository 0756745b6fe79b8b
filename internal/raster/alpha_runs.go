// This file implements AlphaRuns for RLE-encoded alpha (coverage) values.
// Based on tiny-skia's alpha_runs.rs (Android/Skia heritage).
package raster

// AlphaRuns stores run-length-encoded coverage for one destination pixel
// row. Supersampled scanlines accumulate into it; a flush converts the runs
// into blitted spans. Sparseness lets disjoint spans on the same row stay
// independent.
type AlphaRuns struct {
	// runs[i] is the length of the run starting at i; a zero value marks
	// the end of the runs.
	runs []uint16
	// alpha[i] is the accumulated coverage for the run starting at i.
	alpha []uint8
}

// NewAlphaRuns creates an AlphaRuns buffer for the given row width.
func NewAlphaRuns(width int) *AlphaRuns {
	if width <= 0 {
		width = 1
	}
	ar := &AlphaRuns{
		runs:  make([]uint16, width+1),
		alpha: make([]uint8, width+1),
	}
	ar.Reset(width)
	return ar
}

// catchOverflow converts accumulated 0-256 coverage to 0-255.
func catchOverflow(alpha uint16) uint8 {
	if alpha > 256 {
		alpha = 256
	}
	// alpha - (alpha >> 8) maps 256 -> 255
	return uint8(alpha - (alpha >> 8))
}

// IsEmpty returns true if the row holds only a single zero-alpha run.
func (ar *AlphaRuns) IsEmpty() bool {
	if ar.runs[0] == 0 {
		return true
	}
	return ar.alpha[0] == 0 && ar.runs[ar.runs[0]] == 0
}

// Reset reinitializes the buffer for a new row.
func (ar *AlphaRuns) Reset(width int) {
	if width <= 0 {
		width = 1
	}
	if width > 65535 {
		width = 65535
	}
	ar.runs[0] = uint16(width)
	ar.runs[width] = 0 // terminator
	ar.alpha[0] = 0
}

// Add accumulates one supersampled span into the row.
//
//   - x: starting pixel column (relative to the row origin)
//   - startAlpha: partial coverage for the first pixel, if non-zero
//   - middleCount: number of fully covered pixels
//   - stopAlpha: partial coverage for the last pixel, if non-zero
//   - maxValue: per-scanline coverage contribution for middle pixels
//   - offsetX: hint where to start searching in the runs array
//
// Returns the offset hint for the next Add on the same row.
func (ar *AlphaRuns) Add(x int, startAlpha uint8, middleCount int, stopAlpha uint8, maxValue uint8, offsetX int) int {
	if x < 0 {
		return offsetX
	}

	runsOffset := offsetX
	alphaOffset := offsetX
	lastAlphaOffset := offsetX
	x -= offsetX

	if startAlpha != 0 {
		ar.breakRun(runsOffset, x, 1)
		ar.alpha[alphaOffset+x] = catchOverflow(uint16(ar.alpha[alphaOffset+x]) + uint16(startAlpha))
		runsOffset += x + 1
		alphaOffset += x + 1
		x = 0
	}

	if middleCount > 0 {
		ar.breakRun(runsOffset, x, middleCount)
		alphaOffset += x
		runsOffset += x
		x = 0

		for middleCount > 0 {
			ar.alpha[alphaOffset] = catchOverflow(uint16(ar.alpha[alphaOffset]) + uint16(maxValue))

			n := int(ar.runs[runsOffset])
			if n <= 0 {
				break
			}
			if n > middleCount {
				n = middleCount
			}
			alphaOffset += n
			runsOffset += n
			middleCount -= n
		}

		lastAlphaOffset = alphaOffset
	}

	if stopAlpha != 0 {
		ar.breakRun(runsOffset, x, 1)
		alphaOffset += x
		ar.alpha[alphaOffset] += stopAlpha
		lastAlphaOffset = alphaOffset
	}

	return lastAlphaOffset
}

// breakRun splits runs at positions x and x+count so Add can modify
// sub-ranges of existing runs.
func (ar *AlphaRuns) breakRun(runsOffset, x, count int) {
	if count <= 0 {
		return
	}

	origX := x

	// First break: split at position x.
	ro := runsOffset
	ao := runsOffset
	for x > 0 {
		n := int(ar.runs[ro])
		if n <= 0 {
			return
		}

		if x < n {
			ar.alpha[ao+x] = ar.alpha[ao]
			ar.runs[ro] = uint16(x)
			ar.runs[ro+x] = uint16(n - x)
			break
		}
		ro += n
		ao += n
		x -= n
	}

	// Second break: split at position x+count.
	ro = runsOffset + origX
	ao = runsOffset + origX
	x = count

	for {
		n := int(ar.runs[ro])
		if n <= 0 {
			break
		}

		if x < n {
			ar.alpha[ao+x] = ar.alpha[ao]
			ar.runs[ro] = uint16(x)
			ar.runs[ro+x] = uint16(n - x)
			break
		}

		x -= n
		if x == 0 {
			break
		}

		ro += n
		ao += n
	}
}

// Runs returns the run-length slice.
func (ar *AlphaRuns) Runs() []uint16 {
	return ar.runs
}

// Alpha returns the coverage slice.
func (ar *AlphaRuns) Alpha() []uint8 {
	return ar.alpha
}
