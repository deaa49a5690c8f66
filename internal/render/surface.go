// Package render defines the drawing surface the fractal is traced onto and
// the surfaces shipped with sierpinski: a gogpu/gg raster, a terminal
// braille canvas, an SVG recorder and a call recorder for tests.
package render

import "github.com/san-kum/sierpinski/internal/geom"

// Surface is a canvas-like target with immediate-mode path filling.
//
// Size reports the backing buffer in physical pixels; PixelScale is the
// ratio between physical pixels and the logical units used by MoveTo and
// LineTo.
type Surface interface {
	SetFillStyle(style FillStyle)
	BeginPath()
	MoveTo(p geom.Coordinate)
	LineTo(p geom.Coordinate)
	Fill() error
	Size() (width, height int)
	PixelScale() float64
}

// Resizer is implemented by surfaces whose backing buffer can follow the
// display size. Sizes are logical units; the braille canvas counts cells.
type Resizer interface {
	Resize(width, height int) error
}

// DrawTriangle traces t as a closed path and fills it with style.
func DrawTriangle(s Surface, t geom.Triangle, style FillStyle) error {
	s.SetFillStyle(style)
	s.BeginPath()
	s.MoveTo(t[0])
	s.LineTo(t[1])
	s.LineTo(t[2])
	return s.Fill()
}

// path accumulates the points of the current subpath for surfaces that
// rasterise or serialise polygons themselves.
type path struct {
	points []geom.Coordinate
}

func (p *path) begin() { p.points = p.points[:0] }

func (p *path) moveTo(c geom.Coordinate) {
	p.points = append(p.points[:0], c)
}

func (p *path) lineTo(c geom.Coordinate) {
	if len(p.points) == 0 {
		p.moveTo(c)
		return
	}
	p.points = append(p.points, c)
}

// take returns a copy of the current polygon. The path itself is only
// cleared by begin or moveTo.
func (p *path) take() []geom.Coordinate {
	out := make([]geom.Coordinate, len(p.points))
	copy(out, p.points)
	return out
}
