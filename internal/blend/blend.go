// Package blend implements blend modes and alpha compositing for the
// rasterization pipeline.
//
// Blend modes follow the W3C Compositing and Blending Level 1
// specification. All math operates on non-premultiplied channel values in
// [0, 1]; the compositor applies the blend function, then a standard
// source-over composite weighted by the pixel's fractional coverage.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "math"

// RGBA is a non-premultiplied color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Mode selects the blend function applied before compositing.
type Mode int

const (
	// Normal uses the source color unchanged.
	Normal Mode = iota
	// Multiply darkens: B(Cb, Cs) = Cb * Cs.
	Multiply
	// Screen lightens: B(Cb, Cs) = 1 - (1-Cb)*(1-Cs).
	Screen
	// Overlay is HardLight with the layers swapped.
	Overlay
	// SoftLight is a soft version of HardLight.
	SoftLight
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Multiply:
		return "Multiply"
	case Screen:
		return "Screen"
	case Overlay:
		return "Overlay"
	case SoftLight:
		return "SoftLight"
	default:
		return "Unknown"
	}
}

// blendChannel applies the per-channel blend function B(Cb, Cs) where Cb is
// the backdrop (destination) channel and Cs the source channel.
func blendChannel(mode Mode, cb, cs float64) float64 {
	switch mode {
	case Multiply:
		return cb * cs
	case Screen:
		return 1 - (1-cb)*(1-cs)
	case Overlay:
		// HardLight(Cs, Cb)
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	case SoftLight:
		if cs <= 0.5 {
			return cb - (1-2*cs)*cb*(1-cb)
		}
		var d float64
		if cb <= 0.25 {
			d = ((16*cb-12)*cb + 4) * cb
		} else {
			d = math.Sqrt(cb)
		}
		return cb + (2*cs-1)*(d-cb)
	default:
		return cs
	}
}

// Mix returns the effective source color after applying the blend mode
// against the destination. Per the W3C model the destination's alpha
// controls how much of the blend result replaces the plain source color:
//
//	Cs' = (1 - Da)*Cs + Da*B(Cb, Cs)
//
// For Normal the input source color is returned unchanged.
func Mix(src, dst RGBA, mode Mode) RGBA {
	if mode == Normal || dst.A == 0 {
		return src
	}
	da := clamp01(dst.A)
	return RGBA{
		R: (1-da)*src.R + da*blendChannel(mode, dst.R, src.R),
		G: (1-da)*src.G + da*blendChannel(mode, dst.G, src.G),
		B: (1-da)*src.B + da*blendChannel(mode, dst.B, src.B),
		A: src.A,
	}
}

// CompositeOver blends src onto dst with the given mode, then performs a
// source-over alpha composite weighted by coverage in [0, 1]. The result is
// non-premultiplied.
func CompositeOver(src, dst RGBA, coverage float64, mode Mode) RGBA {
	coverage = clamp01(coverage)
	if coverage == 0 {
		return dst
	}

	mixed := Mix(src, dst, mode)

	srcA := clamp01(mixed.A) * coverage
	if srcA == 0 {
		return dst
	}
	dstA := clamp01(dst.A)
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return RGBA{}
	}

	return RGBA{
		R: (mixed.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (mixed.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (mixed.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
