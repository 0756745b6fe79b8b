package vg

import (
	"math"
	"testing"
)

func colorsEqual(a, b RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"six digit", "#ff0000", RGBA{R: 1, A: 1}},
		{"no hash", "00ff00", RGBA{G: 1, A: 1}},
		{"three digit", "#00f", RGBA{B: 1, A: 1}},
		{"eight digit", "#ff000080", RGBA{R: 1, A: float64(0x80) / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA_Lerp(t *testing.T) {
	mid := Red.Lerp(Blue, 0.5)
	want := RGBA{R: 0.5, G: 0, B: 0.5, A: 1}
	if !colorsEqual(mid, want, 1e-9) {
		t.Errorf("Lerp midpoint = %v, want %v", mid, want)
	}
	if !colorsEqual(Red.Lerp(Blue, 0), Red, 1e-9) {
		t.Error("Lerp(0) must return the first color exactly")
	}
	if !colorsEqual(Red.Lerp(Blue, 1), Blue, 1e-9) {
		t.Error("Lerp(1) must return the second color exactly")
	}
}

func TestRGBA_PremultiplyRoundTrip(t *testing.T) {
	c := RGBA{R: 0.8, G: 0.4, B: 0.2, A: 0.5}
	got := c.Premultiply().Unpremultiply()
	if !colorsEqual(got, c, 1e-9) {
		t.Errorf("premultiply round trip = %v, want %v", got, c)
	}
}

func TestRGBA_ColorConversion(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	back := FromColor(c.Color())
	if !colorsEqual(back, c, 1.0/255) {
		t.Errorf("color round trip = %v, want %v", back, c)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGBA
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"white", 0, 0, 1, White},
		{"black", 0, 0, 0, Black},
		{"gray", 180, 0, 0.5, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("HSL(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}
