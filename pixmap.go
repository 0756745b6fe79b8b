package vg

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is the reference Surface implementation: a flat buffer of
// non-premultiplied RGBA bytes, 4 per pixel, rows top to bottom.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a pixmap of the given size. Negative dimensions are
// treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage copies an image into a new pixmap. The image's bounds origin
// is translated to (0, 0).
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return pm
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Data exposes the backing buffer. Mutating it mutates the pixmap.
func (p *Pixmap) Data() []uint8 { return p.data }

func (p *Pixmap) index(x, y int) (int, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, false
	}
	return (y*p.width + x) * 4, true
}

// SetPixel implements the Surface interface. Out-of-range coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	i, ok := p.index(x, y)
	if !ok {
		return
	}
	px := p.data[i : i+4 : i+4]
	px[0] = uint8(clamp255(c.R * 255))
	px[1] = uint8(clamp255(c.G * 255))
	px[2] = uint8(clamp255(c.B * 255))
	px[3] = uint8(clamp255(c.A * 255))
}

// GetPixel implements the Surface interface. Out-of-range coordinates
// read as Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	i, ok := p.index(x, y)
	if !ok {
		return Transparent
	}
	px := p.data[i : i+4 : i+4]
	return RGBA{
		R: float64(px[0]) / 255,
		G: float64(px[1]) / 255,
		B: float64(px[2]) / 255,
		A: float64(px[3]) / 255,
	}
}

// Clear fills every pixel with the given color.
func (p *Pixmap) Clear(c RGBA) {
	if p.width == 0 || p.height == 0 {
		return
	}
	p.SetPixel(0, 0, c)
	first := p.data[:4]
	for i := 4; i < len(p.data); i += 4 {
		copy(p.data[i:i+4], first)
	}
}

// ToImage copies the pixmap into a freshly allocated image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	copy(img.Pix, p.data)
	return img
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("vg: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("vg: encode %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image and Surface interfaces.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
