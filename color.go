package vg

import (
	"image/color"
	"math"
)

// RGBA is a non-premultiplied color with float components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA{}
)

// RGB creates an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex parses "RGB", "RGBA", "RRGGBB", or "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(s string) RGBA {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	byteAt := func(i, width int) float64 {
		v := 0
		for _, c := range []byte(s[i : i+width]) {
			v = v<<4 | hexNibble(c)
		}
		if width == 1 {
			v *= 17
		}
		return float64(v) / 255
	}

	switch len(s) {
	case 3:
		return RGBA{byteAt(0, 1), byteAt(1, 1), byteAt(2, 1), 1}
	case 4:
		return RGBA{byteAt(0, 1), byteAt(1, 1), byteAt(2, 1), byteAt(3, 1)}
	case 6:
		return RGBA{byteAt(0, 2), byteAt(2, 2), byteAt(4, 2), 1}
	case 8:
		return RGBA{byteAt(0, 2), byteAt(2, 2), byteAt(4, 2), byteAt(6, 2)}
	}
	return RGBA{A: 1}
}

func hexNibble(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// HSL creates a color from hue (degrees, wrapped into [0, 360)),
// saturation, and lightness (both [0, 1]).
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch int(h / 60) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB(r+m, g+m, b+m)
}

// FromColor converts a standard library color. Premultiplied 16-bit
// channels are divided back out by alpha.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Color converts to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Premultiply scales the color channels by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides the color channels by alpha. Zero alpha maps to
// the zero color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Lerp interpolates every channel linearly, alpha included.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp255(x float64) float64 {
	return math.Min(math.Max(x, 0), 255)
}
