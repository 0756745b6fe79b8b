package vg

// Style records are plain data: they describe how a shape kind is painted
// and own no raster resources. The rasterizer and stroker never see them;
// shape helpers translate each record into generic path, stroke, and paint
// calls.

// ArrowKind selects an arrow head shape.
type ArrowKind int

const (
	// ArrowNone draws no arrow head.
	ArrowNone ArrowKind = iota
	// ArrowTriangle draws a filled triangle.
	ArrowTriangle
	// ArrowOpen draws two stroked barbs.
	ArrowOpen
	// ArrowStealth draws a swept-back filled triangle.
	ArrowStealth
	// ArrowDiamond draws a filled diamond.
	ArrowDiamond
	// ArrowCircle draws a filled disc.
	ArrowCircle
)

// MarkerKind selects a data point marker shape.
type MarkerKind int

const (
	// MarkerSquare is an axis-aligned square.
	MarkerSquare MarkerKind = iota
	// MarkerDiamond is a square rotated 45 degrees.
	MarkerDiamond
	// MarkerTriangle is an upward-pointing triangle.
	MarkerTriangle
	// MarkerStar is a five-pointed star.
	MarkerStar
	// MarkerPlus is an upright cross.
	MarkerPlus
	// MarkerCross is a diagonal cross.
	MarkerCross
)

// LineStyle paints a line or polyline.
type LineStyle struct {
	Paint      Paint
	Width      float64
	Cap        LineCap
	Dash       *Dash
	StartArrow ArrowKind
	EndArrow   ArrowKind
	ArrowSize  float64
}

// NewLineStyle creates a solid line style of the given color and width.
func NewLineStyle(color RGBA, width float64) LineStyle {
	return LineStyle{
		Paint: SolidPaint(color),
		Width: width,
	}
}

// ShapeStyle paints a closed shape: an optional fill and an optional
// outline. A nil paint disables that half.
type ShapeStyle struct {
	Fill        *Paint
	Stroke      *Paint
	StrokeWidth float64
}

// FillStyle creates a fill-only shape style.
func FillStyle(color RGBA) ShapeStyle {
	p := SolidPaint(color)
	return ShapeStyle{Fill: &p}
}

// OutlineStyle creates an outline-only shape style.
func OutlineStyle(color RGBA, width float64) ShapeStyle {
	p := SolidPaint(color)
	return ShapeStyle{Stroke: &p, StrokeWidth: width}
}

// RectStyle paints a rectangle, optionally with per-corner rounding.
type RectStyle struct {
	ShapeStyle
	Radii CornerRadii
}

// ArcStyle paints an open arc of a given stroke thickness.
type ArcStyle struct {
	Paint Paint
	Width float64
}

// MarkerStyle paints a data point marker.
type MarkerStyle struct {
	Kind MarkerKind
	Size float64
	ShapeStyle
}

// LegendEntry is one legend row: a color swatch and its label.
type LegendEntry struct {
	Swatch RGBA
	Label  string
}

// LegendStyle paints a legend: a box holding one swatch row per entry.
// Labels are rendered through Glyphs and skipped when it is nil.
type LegendStyle struct {
	Box        RectStyle
	SwatchSize float64
	Padding    float64
	Spacing    float64
	Glyphs     GlyphSource
	Text       Paint
}

// NewLegendStyle creates a legend style with a white box, a thin gray
// border, and black labels from the given glyph source.
func NewLegendStyle(glyphs GlyphSource) LegendStyle {
	fill := SolidPaint(White)
	border := SolidPaint(RGB(0.5, 0.5, 0.5))
	return LegendStyle{
		Box:        RectStyle{ShapeStyle: ShapeStyle{Fill: &fill, Stroke: &border, StrokeWidth: 1}},
		SwatchSize: 10,
		Padding:    4,
		Spacing:    4,
		Glyphs:     glyphs,
		Text:       SolidPaint(Black),
	}
}

// AxisStyle paints an axis line with perpendicular tick marks.
type AxisStyle struct {
	Line       LineStyle
	TickLength float64
}

// CalloutStyle paints a label box with a leader line to its target.
type CalloutStyle struct {
	Leader LineStyle
	Box    RectStyle
}

// DimensionStyle paints a measurement between two points: a
// double-arrowed line parallel to the measured span, plus extension
// lines from the measured points.
type DimensionStyle struct {
	Line LineStyle

	// Offset is the signed distance from the span to the dimension line.
	Offset float64

	// Extension is how far the extension lines overshoot the dimension
	// line.
	Extension float64
}

// BracketStyle paints a square bracket spanning two points.
type BracketStyle struct {
	Paint Paint
	Width float64

	// Depth is the bracket's signed reach away from the spanned chord.
	Depth float64
}
