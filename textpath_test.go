package vg

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFaceGlyphSource_Metrics(t *testing.T) {
	src := NewFaceGlyphSource(basicfont.Face7x13)
	gm, ok := src.Glyph('A')
	if !ok {
		t.Fatal("face has no glyph for 'A'")
	}
	if gm.Width <= 0 || gm.Height <= 0 {
		t.Fatalf("glyph dimensions %dx%d", gm.Width, gm.Height)
	}
	if gm.Advance != 7 {
		t.Errorf("advance = %v, want 7 for Face7x13", gm.Advance)
	}
	covered := 0
	for _, a := range gm.Alpha {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("glyph mask has no coverage")
	}
}

func TestDrawTextOnCurve_StraightLine(t *testing.T) {
	pm := NewPixmap(120, 30)
	c := NewCanvas(pm)
	src := NewFaceGlyphSource(basicfont.Face7x13)

	// A cubic that degenerates to a horizontal line.
	curve := NewCubicBez(Pt(5, 20), Pt(40, 20), Pt(80, 20), Pt(115, 20))
	err := c.DrawTextOnCurve("HELLO", curve, src, SolidPaint(Black), TextPathOptions{})
	if err != nil {
		t.Fatalf("DrawTextOnCurve: %v", err)
	}

	covered := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if pm.GetPixel(x, y).A > 0 {
				covered++
				if y > 22 {
					t.Fatalf("glyph coverage below the baseline band at (%d,%d)", x, y)
				}
			}
		}
	}
	if covered == 0 {
		t.Fatal("no glyph coverage on the canvas")
	}
}

func TestDrawTextOnCurve_StopsAtCurveEnd(t *testing.T) {
	pm := NewPixmap(120, 30)
	c := NewCanvas(pm)
	src := NewFaceGlyphSource(basicfont.Face7x13)

	// Short curve: most of the long text must be dropped, and nothing may
	// be drawn past the curve end.
	curve := NewCubicBez(Pt(5, 15), Pt(10, 15), Pt(15, 15), Pt(20, 15))
	err := c.DrawTextOnCurve("ABCDEFGHIJ", curve, src, SolidPaint(Black), TextPathOptions{})
	if err != nil {
		t.Fatalf("DrawTextOnCurve: %v", err)
	}

	for y := 0; y < 30; y++ {
		for x := 40; x < 120; x++ {
			if pm.GetPixel(x, y).A > 0 {
				t.Fatalf("glyph drawn at (%d,%d), past the curve end", x, y)
			}
		}
	}
}

func TestDrawTextOnCurve_PerpendicularOffset(t *testing.T) {
	render := func(offset float64) []uint8 {
		pm := NewPixmap(120, 40)
		c := NewCanvas(pm)
		src := NewFaceGlyphSource(basicfont.Face7x13)
		curve := NewCubicBez(Pt(5, 20), Pt(40, 20), Pt(80, 20), Pt(115, 20))
		_ = c.DrawTextOnCurve("HI", curve, src, SolidPaint(Black), TextPathOptions{Offset: offset})
		return pm.Data()
	}

	if bytes.Equal(render(0), render(8)) {
		t.Error("perpendicular offset had no effect on placement")
	}
}

func TestDrawTextOnCurve_NFCNormalization(t *testing.T) {
	src := NewFaceGlyphSource(basicfont.Face7x13)
	curve := NewCubicBez(Pt(5, 20), Pt(40, 20), Pt(80, 20), Pt(115, 20))

	render := func(text string) []uint8 {
		pm := NewPixmap(120, 30)
		_ = NewCanvas(pm).DrawTextOnCurve(text, curve, src, SolidPaint(Black), TextPathOptions{})
		return pm.Data()
	}

	// "e" + combining acute composes to a single rune before glyph lookup,
	// so both spellings take the same code path (even when the face lacks
	// the composed glyph).
	composed := render("café")
	decomposed := render("café")
	if !bytes.Equal(composed, decomposed) {
		t.Error("NFC-equivalent strings rendered differently")
	}
}
