package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/san-kum/sierpinski/internal/geom"
)

// Raster is a Surface backed by a gogpu/gg software context. Its backing
// buffer holds logical size x scale pixels and drawing is scaled to match,
// the same way a high-DPI canvas is set up.
type Raster struct {
	dc    *gg.Context
	scale float64
}

// NewRaster creates a raster for a width x height logical area at the given
// device pixel scale. Non-positive scales count as 1.
func NewRaster(width, height int, scale float64) *Raster {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	pw := max(1, int(math.Round(float64(width)*scale)))
	ph := max(1, int(math.Round(float64(height)*scale)))

	dc := gg.NewContext(pw, ph)
	dc.Scale(scale, scale)
	return &Raster{dc: dc, scale: scale}
}

func (r *Raster) SetFillStyle(style FillStyle) { r.dc.SetColor(style.Color) }
func (r *Raster) BeginPath()                   { r.dc.ClearPath() }
func (r *Raster) MoveTo(p geom.Coordinate)     { r.dc.MoveTo(p.X, p.Y) }
func (r *Raster) LineTo(p geom.Coordinate)     { r.dc.LineTo(p.X, p.Y) }

func (r *Raster) Fill() error {
	r.dc.ClosePath()
	return r.dc.Fill()
}

func (r *Raster) Size() (int, int)    { return r.dc.Width(), r.dc.Height() }
func (r *Raster) PixelScale() float64 { return r.scale }

// Resize reallocates the backing buffer for a width x height logical area.
// The scale transform is kept.
func (r *Raster) Resize(width, height int) error {
	pw := int(math.Round(float64(width) * r.scale))
	ph := int(math.Round(float64(height) * r.scale))
	if err := r.dc.Resize(pw, ph); err != nil {
		return fmt.Errorf("render: resize raster: %w", err)
	}
	return nil
}

// Clear paints the whole buffer with style.
func (r *Raster) Clear(style FillStyle) {
	r.dc.ClearWithColor(gg.FromColor(style.Color))
}

// Image returns a snapshot of the backing buffer.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the buffer as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// SavePNG writes the buffer to a PNG file.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

// Close releases the gg context.
func (r *Raster) Close() error { return r.dc.Close() }
