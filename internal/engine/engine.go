// Package engine turns bounding triangles into the next generation of the
// Sierpiński construction, drawing each newly revealed center triangle.
package engine

import (
	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/logging"
	"github.com/san-kum/sierpinski/internal/render"
)

// Engine draws onto a single surface. A nil surface is a no-op sink: the
// geometry is still computed but nothing is drawn.
type Engine struct {
	surface render.Surface
	scale   float64
}

// New creates an engine for surface, taking the termination resolution from
// the surface's pixel scale.
func New(surface render.Surface) *Engine {
	e := &Engine{surface: surface, scale: 1}
	if surface != nil {
		e.scale = surface.PixelScale()
	}
	return e
}

// Scale is the device pixel scale used for termination.
func (e *Engine) Scale() float64 { return e.scale }

// DrawTriangle fills t on the surface. Fill failures are logged, not
// returned: a half-drawn frame is preferable to stopping the animation.
func (e *Engine) DrawTriangle(t geom.Triangle, style render.FillStyle) {
	if e.surface == nil {
		return
	}
	if err := render.DrawTriangle(e.surface, t, style); err != nil {
		logging.Logger().Warn("fill failed", "style", style.String(), "err", err)
	}
}

// DrawCenter subdivides t and draws its center triangle. It reports false
// when t is terminal, in which case nothing is drawn.
func (e *Engine) DrawCenter(t geom.Triangle, style render.FillStyle) (geom.Division, bool) {
	d, ok := geom.Subdivide(t, e.scale)
	if !ok {
		return geom.Division{}, false
	}
	e.DrawTriangle(d.Center, style)
	return d, true
}

// AdvanceGeneration draws the center of every triangle in frontier and
// returns their children in frontier order. Terminal triangles contribute
// nothing, so an empty result means the construction is complete.
func (e *Engine) AdvanceGeneration(frontier []geom.Triangle, style render.FillStyle) []geom.Triangle {
	next := make([]geom.Triangle, 0, 3*len(frontier))
	for _, t := range frontier {
		d, ok := e.DrawCenter(t, style)
		if !ok {
			continue
		}
		next = append(next, d.Children[:]...)
	}
	return next
}

// DrawAll draws the complete fractal inside t in one call by recursing until
// every branch terminates. It returns the number of center triangles drawn.
func (e *Engine) DrawAll(t geom.Triangle, style render.FillStyle) int {
	d, ok := e.DrawCenter(t, style)
	if !ok {
		return 0
	}
	n := 1
	for _, c := range d.Children {
		n += e.DrawAll(c, style)
	}
	return n
}
