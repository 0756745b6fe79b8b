package blend

import (
	"math"
	"testing"
)

func rgbaEqual(a, b RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Normal, "Normal"},
		{Multiply, "Multiply"},
		{Screen, "Screen"},
		{Overlay, "Overlay"},
		{SoftLight, "SoftLight"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBlendChannel(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		cb, cs float64
		want   float64
	}{
		{"normal ignores backdrop", Normal, 0.3, 0.8, 0.8},
		{"multiply", Multiply, 0.5, 0.5, 0.25},
		{"multiply by white", Multiply, 0.7, 1.0, 0.7},
		{"multiply by black", Multiply, 0.7, 0.0, 0.0},
		{"screen", Screen, 0.5, 0.5, 0.75},
		{"screen with black source", Screen, 0.6, 0.0, 0.6},
		{"screen with white source", Screen, 0.6, 1.0, 1.0},
		{"overlay dark backdrop multiplies", Overlay, 0.25, 0.5, 0.25},
		{"overlay light backdrop screens", Overlay, 0.75, 0.5, 0.75},
		{"soft light neutral gray", SoftLight, 0.4, 0.5, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blendChannel(tt.mode, tt.cb, tt.cs)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("blendChannel(%v, %v, %v) = %v, want %v", tt.mode, tt.cb, tt.cs, got, tt.want)
			}
		})
	}
}

func TestSoftLight_DarkensAndLightens(t *testing.T) {
	cb := 0.5
	if got := blendChannel(SoftLight, cb, 0.25); got >= cb {
		t.Errorf("source below 0.5 must darken: got %v", got)
	}
	if got := blendChannel(SoftLight, cb, 0.75); got <= cb {
		t.Errorf("source above 0.5 must lighten: got %v", got)
	}
}

func TestCompositeOver_OpaqueNormal(t *testing.T) {
	src := RGBA{R: 1, A: 1}
	dst := RGBA{G: 1, A: 1}
	got := CompositeOver(src, dst, 1, Normal)
	if !rgbaEqual(got, src, 1e-9) {
		t.Errorf("full-coverage opaque over = %v, want source %v", got, src)
	}
}

func TestCompositeOver_ZeroCoverage(t *testing.T) {
	src := RGBA{R: 1, A: 1}
	dst := RGBA{G: 1, A: 1}
	if got := CompositeOver(src, dst, 0, Normal); !rgbaEqual(got, dst, 1e-9) {
		t.Errorf("zero coverage changed destination: %v", got)
	}
}

func TestCompositeOver_HalfCoverage(t *testing.T) {
	src := RGBA{R: 1, G: 1, B: 1, A: 1}
	dst := RGBA{A: 1}
	got := CompositeOver(src, dst, 0.5, Normal)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !rgbaEqual(got, want, 1e-9) {
		t.Errorf("half coverage white over black = %v, want %v", got, want)
	}
}

func TestCompositeOver_SourceAlphaWeighting(t *testing.T) {
	// Coverage and source alpha multiply: 0.5 coverage of a 0.5-alpha
	// source equals 0.25 effective weight.
	src := RGBA{R: 1, G: 1, B: 1, A: 0.5}
	dst := RGBA{A: 1}
	got := CompositeOver(src, dst, 0.5, Normal)
	want := RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}
	if !rgbaEqual(got, want, 1e-9) {
		t.Errorf("weighted over = %v, want %v", got, want)
	}
}

func TestCompositeOver_TransparentDestination(t *testing.T) {
	src := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	got := CompositeOver(src, RGBA{}, 1, Multiply)
	// With no backdrop alpha, blend modes degrade to the plain source.
	if !rgbaEqual(got, src, 1e-9) {
		t.Errorf("multiply onto transparent = %v, want %v", got, src)
	}
}

func TestMix_BackdropAlphaInterpolates(t *testing.T) {
	src := RGBA{R: 1, A: 1}
	dstOpaque := RGBA{R: 0.5, A: 1}
	dstClear := RGBA{R: 0.5, A: 0}

	onOpaque := Mix(src, dstOpaque, Multiply)
	onClear := Mix(src, dstClear, Multiply)

	if math.Abs(onOpaque.R-0.5) > 1e-9 {
		t.Errorf("multiply on opaque backdrop R = %v, want 0.5", onOpaque.R)
	}
	if math.Abs(onClear.R-1.0) > 1e-9 {
		t.Errorf("multiply on clear backdrop R = %v, want 1 (plain source)", onClear.R)
	}
}
