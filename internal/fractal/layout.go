// Package fractal lays out the root triangle on a surface and runs one
// animated construction per surface.
package fractal

import (
	"math"

	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/render"
)

var tan60 = math.Tan(math.Pi / 3)

// RootTriangle returns the largest equilateral triangle that fits a
// width x height area, centered on both axes, listed top, bottom-left,
// bottom-right.
func RootTriangle(width, height float64) geom.Triangle {
	h := math.Min(height, tan60*width/2)
	base := 2 * h / tan60

	top := (height - h) / 2
	bottom := height - top
	return geom.Triangle{
		{X: width / 2, Y: top},
		{X: (width - base) / 2, Y: bottom},
		{X: width - (width-base)/2, Y: bottom},
	}
}

// RealDimensions converts a surface's physical size to logical units.
func RealDimensions(s render.Surface) (width, height float64) {
	w, h := s.Size()
	scale := s.PixelScale()
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return float64(w) / scale, float64(h) / scale
}
