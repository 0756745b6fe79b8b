package vg

import (
	"bytes"
	"image"
	"math"
	"testing"
)

func TestCanvas_FillRectNoAA_Exact(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(White)
	c := NewCanvas(pm)

	path := BuildPath().Rect(0, 0, 10, 10).MustBuild()
	c.FillPath(path, FillRuleNonZero, SolidPaint(Red).WithAntiAlias(false))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got := pm.GetPixel(x, y)
			if x < 10 && y < 10 {
				if got != Red {
					t.Fatalf("pixel (%d,%d) = %v, want pure red", x, y, got)
				}
			} else if got != White {
				t.Fatalf("pixel (%d,%d) = %v, want untouched white", x, y, got)
			}
		}
	}
}

func TestCanvas_FillCircleAA_Coverage(t *testing.T) {
	pm := NewPixmap(21, 21)
	c := NewCanvas(pm)

	path := BuildPath().Circle(10, 10, 5).MustBuild()
	c.FillPath(path, FillRuleNonZero, SolidPaint(Red))

	if got := pm.GetPixel(10, 10); got.A != 1 {
		t.Errorf("center pixel alpha = %v, want full coverage", got.A)
	}

	// Pixels straddling the boundary ring must show partial coverage.
	partial := 0
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			a := pm.GetPixel(x, y).A
			if a < 0 || a > 1 {
				t.Fatalf("coverage out of bounds at (%d,%d): %v", x, y, a)
			}
			if a > 0 && a < 1 {
				partial++
				d := Pt(float64(x)+0.5, float64(y)+0.5).Distance(Pt(10, 10))
				if math.Abs(d-5) > 1.5 {
					t.Fatalf("partial coverage at (%d,%d), distance %v from boundary", x, y, d)
				}
			}
		}
	}
	if partial == 0 {
		t.Error("anti-aliased circle has no partially covered boundary pixels")
	}
}

func TestCanvas_FillGradientRect(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := NewCanvas(pm)

	g, err := NewLinearGradient(Pt(0, 0), Pt(10, 0), redBlueStops(), ExtendPad)
	if err != nil {
		t.Fatalf("NewLinearGradient: %v", err)
	}
	path := BuildPath().Rect(0, 0, 10, 10).MustBuild()
	c.FillPath(path, FillRuleNonZero, NewPaint(g).WithAntiAlias(false))

	// Red falls and blue rises monotonically along x.
	prev := pm.GetPixel(0, 5)
	if prev.R < 0.9 {
		t.Errorf("leftmost pixel R = %v, want near 1", prev.R)
	}
	for x := 1; x < 10; x++ {
		cur := pm.GetPixel(x, 5)
		if cur.R > prev.R+1e-9 || cur.B < prev.B-1e-9 {
			t.Fatalf("gradient not monotonic at x=%d: %v after %v", x, cur, prev)
		}
		prev = cur
	}
	if prev.B < 0.9 {
		t.Errorf("rightmost pixel B = %v, want near 1", prev.B)
	}
}

func TestCanvas_WindingInvariance(t *testing.T) {
	loop := []Point{Pt(2, 2), Pt(12, 3), Pt(11, 12), Pt(3, 11)}
	reversed := make([]Point, len(loop))
	for i, p := range loop {
		reversed[len(loop)-1-i] = p
	}

	render := func(pts []Point) []uint8 {
		pm := NewPixmap(16, 16)
		NewCanvas(pm).FillPolygon(pts, FillRuleNonZero, SolidPaint(Black))
		return pm.Data()
	}

	if !bytes.Equal(render(loop), render(reversed)) {
		t.Error("reversing vertex order changed the nonzero fill")
	}
}

func TestCanvas_FillRuleEvenOddHole(t *testing.T) {
	// Two nested squares with the same winding: even-odd leaves a hole,
	// nonzero fills through.
	path := BuildPath().
		Rect(2, 2, 16, 16).
		Rect(6, 6, 8, 8).
		MustBuild()

	render := func(rule FillRule) RGBA {
		pm := NewPixmap(20, 20)
		c := NewCanvas(pm)
		c.FillPath(path, rule, SolidPaint(Black).WithAntiAlias(false))
		return pm.GetPixel(10, 10)
	}

	if got := render(FillRuleEvenOdd); got.A != 0 {
		t.Errorf("even-odd center = %v, want hole", got)
	}
	if got := render(FillRuleNonZero); got != Black {
		t.Errorf("nonzero center = %v, want filled", got)
	}
}

func TestCanvas_ClipRestrictsWrites(t *testing.T) {
	pm := NewPixmap(20, 20)
	c := NewCanvas(pm).WithClip(image.Rect(5, 5, 10, 10))

	path := BuildPath().Rect(0, 0, 20, 20).MustBuild()
	c.FillPath(path, FillRuleNonZero, SolidPaint(Red).WithAntiAlias(false))

	if got := pm.GetPixel(7, 7); got != Red {
		t.Errorf("inside clip = %v, want red", got)
	}
	if got := pm.GetPixel(2, 2); got.A != 0 {
		t.Errorf("outside clip = %v, want untouched", got)
	}
	if got := pm.GetPixel(12, 7); got.A != 0 {
		t.Errorf("right of clip = %v, want untouched", got)
	}
}

func TestCanvas_NaNSubpathDropped(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := NewCanvas(pm)

	// A loop with a NaN vertex contributes nothing; the call must not
	// panic and must leave the surface clean.
	c.FillPolygon([]Point{
		Pt(0, 0), Pt(math.NaN(), 5), Pt(8, 8),
	}, FillRuleNonZero, SolidPaint(Red))

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if pm.GetPixel(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) written despite NaN geometry", x, y)
			}
		}
	}
}

func TestCanvas_BlendMultiply(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGBA{R: 1, G: 0.5, B: 0.25, A: 1})
	c := NewCanvas(pm)

	path := BuildPath().Rect(0, 0, 4, 4).MustBuild()
	paint := SolidPaint(RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}).
		WithBlendMode(BlendMultiply).
		WithAntiAlias(false)
	c.FillPath(path, FillRuleNonZero, paint)

	got := pm.GetPixel(2, 2)
	want := RGBA{R: 0.5, G: 0.25, B: 0.125, A: 1}
	if !colorsEqual(got, want, 2.0/255) {
		t.Errorf("multiply result = %v, want %v", got, want)
	}
}

func TestCanvas_SourceAlphaWeighting(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	c := NewCanvas(pm)

	path := BuildPath().Rect(0, 0, 4, 4).MustBuild()
	c.FillPath(path, FillRuleNonZero, SolidPaint(Black.WithAlpha(0.5)).WithAntiAlias(false))

	got := pm.GetPixel(1, 1)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsEqual(got, want, 2.0/255) {
		t.Errorf("half-alpha black over white = %v, want mid gray", got)
	}
}

func TestCanvas_Determinism(t *testing.T) {
	scene := func() []uint8 {
		pm := NewPixmap(40, 40)
		pm.Clear(White)
		c := NewCanvas(pm)

		g, _ := NewRadialGradient(Pt(20, 20), 15, redBlueStops(), ExtendPad)
		c.FillPath(BuildPath().Circle(20, 20, 15).MustBuild(), FillRuleNonZero, NewPaint(g))

		stroke := NewStroke(2).WithCap(CapRound)
		c.StrokePath(
			BuildPath().MoveTo(5, 35).QuadTo(20, 5, 35, 35).MustBuild(),
			stroke, SolidPaint(Black))
		return pm.Data()
	}

	first := scene()
	for i := 0; i < 3; i++ {
		if !bytes.Equal(first, scene()) {
			t.Fatal("identical draw calls produced different pixels")
		}
	}
}

func TestCanvas_StrokeLineCoverage(t *testing.T) {
	pm := NewPixmap(20, 10)
	c := NewCanvas(pm)

	path := BuildPath().MoveTo(2, 5).LineTo(18, 5).MustBuild()
	c.StrokePath(path, NewStroke(4), SolidPaint(Black))

	// Mid-shaft pixels are fully covered; pixels far above are untouched.
	if got := pm.GetPixel(10, 5).A; got != 1 {
		t.Errorf("shaft center alpha = %v, want 1", got)
	}
	if got := pm.GetPixel(10, 0).A; got != 0 {
		t.Errorf("above shaft alpha = %v, want 0", got)
	}
}

func TestFillPolygon_CoverageConverges(t *testing.T) {
	// The coverage sum of a filled circle approaches its analytic area,
	// and the error shrinks as the flattening tolerance does.
	const radius = 20.0
	exact := math.Pi * radius * radius
	p := BuildPath().Circle(24, 24, radius).MustBuild()

	area := func(tolerance float64) float64 {
		pm := NewPixmap(48, 48)
		c := NewCanvas(pm)
		for _, sub := range p.Flatten(tolerance) {
			c.FillPolygon(sub.Points, FillRuleNonZero, SolidPaint(Black))
		}
		sum := 0.0
		for y := 0; y < 48; y++ {
			for x := 0; x < 48; x++ {
				sum += pm.GetPixel(x, y).A
			}
		}
		return sum
	}

	coarse := math.Abs(area(2.0) - exact)
	fine := math.Abs(area(0.02) - exact)
	if fine > coarse+1e-9 {
		t.Errorf("error grew as tolerance shrank: coarse %v, fine %v", coarse, fine)
	}
	if fine > exact*0.02 {
		t.Errorf("fine-tolerance area error %v exceeds 2%% of %v", fine, exact)
	}
}

func TestFillPath_AwayFromOrigin(t *testing.T) {
	// Shapes far from the surface origin land on the right pixels; the
	// rasterizer works in the geometry's own bounding box.
	pm := NewPixmap(64, 64)
	pm.Clear(White)
	c := NewCanvas(pm)

	rect := BuildPath().Rect(50, 50, 8, 8).MustBuild()
	c.FillPath(rect, FillRuleNonZero, SolidPaint(Red).WithAntiAlias(false))

	if got := pm.GetPixel(54, 54); got != Red {
		t.Errorf("interior pixel = %+v, want red", got)
	}
	if got := pm.GetPixel(49, 54); got != White {
		t.Errorf("pixel left of rect = %+v, want white", got)
	}
	if got := pm.GetPixel(58, 54); got != White {
		t.Errorf("pixel right of rect = %+v, want white", got)
	}

	circle := BuildPath().Circle(20, 40, 6).MustBuild()
	c.FillPath(circle, FillRuleNonZero, SolidPaint(Black))
	if got := pm.GetPixel(20, 40); got != Black {
		t.Errorf("circle center = %+v, want black", got)
	}
	if got := pm.GetPixel(20, 30); got != White {
		t.Errorf("pixel above circle = %+v, want white", got)
	}
}
