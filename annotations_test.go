package vg

import (
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestDrawBracket(t *testing.T) {
	pm := NewPixmap(40, 40)
	c := NewCanvas(pm)

	err := c.DrawBracket(Pt(5, 25), Pt(35, 25), BracketStyle{
		Paint: SolidPaint(Black),
		Width: 2,
		Depth: -5,
	})
	if err != nil {
		t.Fatalf("DrawBracket: %v", err)
	}

	if got := pm.GetPixel(20, 20).A; got == 0 {
		t.Error("bracket spine has no coverage at its midpoint")
	}
	if got := pm.GetPixel(5, 23).A; got == 0 {
		t.Error("bracket arm has no coverage")
	}
	if got := pm.GetPixel(20, 25).A; got != 0 {
		t.Errorf("chord midpoint alpha = %v, want 0", got)
	}
	if got := pm.GetPixel(20, 30).A; got != 0 {
		t.Errorf("pixel below chord alpha = %v, want 0", got)
	}
}

func TestDrawBracket_Degenerate(t *testing.T) {
	pm := NewPixmap(20, 20)
	c := NewCanvas(pm)

	if err := c.DrawBracket(Pt(2, 10), Pt(18, 10), BracketStyle{Paint: SolidPaint(Black), Width: 2}); err != nil {
		t.Fatalf("zero depth: %v", err)
	}
	if err := c.DrawBracket(Pt(5, 5), Pt(5, 5), BracketStyle{Paint: SolidPaint(Black), Width: 2, Depth: 3}); err != nil {
		t.Fatalf("zero span: %v", err)
	}
	for i, a := range pm.Data() {
		if a != 0 {
			t.Fatalf("degenerate brackets wrote byte %d", i)
		}
	}

	err := c.DrawBracket(Pt(math.NaN(), 0), Pt(1, 1), BracketStyle{Paint: SolidPaint(Black), Width: 2, Depth: 3})
	if err != ErrNonFiniteCoordinate {
		t.Errorf("NaN endpoint error = %v, want ErrNonFiniteCoordinate", err)
	}
}

func TestDrawAxis(t *testing.T) {
	pm := NewPixmap(40, 20)
	c := NewCanvas(pm)

	err := c.DrawAxis(Pt(5, 10), Pt(35, 10), []float64{0, 0.5, 1, 1.5, -0.2, math.NaN()}, AxisStyle{
		Line:       NewLineStyle(Black, 2),
		TickLength: 5,
	})
	if err != nil {
		t.Fatalf("DrawAxis: %v", err)
	}

	if got := pm.GetPixel(20, 10).A; got == 0 {
		t.Error("axis line has no coverage")
	}
	if got := pm.GetPixel(20, 13).A; got == 0 {
		t.Error("mid tick has no coverage")
	}
	if got := pm.GetPixel(5, 13).A; got == 0 {
		t.Error("start tick has no coverage")
	}
	if got := pm.GetPixel(27, 13).A; got != 0 {
		t.Errorf("non-tick position alpha = %v, want 0", got)
	}
}

func TestDrawDimension(t *testing.T) {
	pm := NewPixmap(50, 40)
	c := NewCanvas(pm)

	err := c.DrawDimension(Pt(10, 30), Pt(40, 30), DimensionStyle{
		Line:      NewLineStyle(Black, 2),
		Offset:    -10,
		Extension: 3,
	})
	if err != nil {
		t.Fatalf("DrawDimension: %v", err)
	}

	if got := pm.GetPixel(25, 20).A; got == 0 {
		t.Error("dimension line has no coverage")
	}
	// Default triangle arrow heads cover the line ends.
	if got := pm.GetPixel(13, 20).A; got == 0 {
		t.Error("start arrow head has no coverage")
	}
	if got := pm.GetPixel(10, 25).A; got == 0 {
		t.Error("extension line has no coverage")
	}
	if got := pm.GetPixel(25, 30).A; got != 0 {
		t.Errorf("measured span alpha = %v, want 0", got)
	}
}

func TestDrawCallout(t *testing.T) {
	pm := NewPixmap(60, 40)
	c := NewCanvas(pm)

	box := NewRect(Pt(30, 5), Pt(55, 20))
	err := c.DrawCallout(Pt(5, 35), box, CalloutStyle{
		Leader: NewLineStyle(Black, 2),
		Box:    RectStyle{ShapeStyle: FillStyle(Red)},
	})
	if err != nil {
		t.Fatalf("DrawCallout: %v", err)
	}

	if got := pm.GetPixel(40, 10); got != Red {
		t.Errorf("box interior = %+v, want red", got)
	}
	// Leader runs from the nearest box corner (30,20) to the target.
	if got := pm.GetPixel(17, 27).A; got == 0 {
		t.Error("leader line has no coverage")
	}
}

func TestDrawCallout_TargetInsideBox(t *testing.T) {
	pm := NewPixmap(30, 30)
	c := NewCanvas(pm)

	box := NewRect(Pt(2, 2), Pt(22, 22))
	err := c.DrawCallout(Pt(12, 12), box, CalloutStyle{
		Leader: NewLineStyle(Black, 2),
		Box:    RectStyle{ShapeStyle: OutlineStyle(Black, 1)},
	})
	if err != nil {
		t.Fatalf("DrawCallout: %v", err)
	}
	if got := pm.GetPixel(12, 12).A; got != 0 {
		t.Errorf("interior alpha = %v, want 0 (no leader for inside target)", got)
	}
}

func TestDrawLegend(t *testing.T) {
	pm := NewPixmap(64, 48)
	c := NewCanvas(pm)

	style := NewLegendStyle(NewFaceGlyphSource(basicfont.Face7x13))
	entries := []LegendEntry{
		{Swatch: Red, Label: "A"},
		{Swatch: Blue, Label: "B"},
	}
	if err := c.DrawLegend(Pt(2, 2), entries, style); err != nil {
		t.Fatalf("DrawLegend: %v", err)
	}

	// Swatch rows sit inside the padded box.
	if got := pm.GetPixel(10, 10); got != Red {
		t.Errorf("first swatch = %+v, want red", got)
	}
	if got := pm.GetPixel(10, 25); got != Blue {
		t.Errorf("second swatch = %+v, want blue", got)
	}
	if got := pm.GetPixel(4, 4); got != White {
		t.Errorf("box background = %+v, want white", got)
	}

	// The first label renders dark pixels right of the first swatch.
	dark := 0
	for y := 4; y <= 16; y++ {
		for x := 19; x <= 28; x++ {
			if px := pm.GetPixel(x, y); px.A > 0 && px.R < 0.5 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("label produced no dark pixels")
	}
}

func TestDrawLegend_NoEntries(t *testing.T) {
	pm := NewPixmap(20, 20)
	c := NewCanvas(pm)

	if err := c.DrawLegend(Pt(2, 2), nil, NewLegendStyle(nil)); err != nil {
		t.Fatalf("DrawLegend: %v", err)
	}
	for i, a := range pm.Data() {
		if a != 0 {
			t.Fatalf("empty legend wrote byte %d", i)
		}
	}
}
