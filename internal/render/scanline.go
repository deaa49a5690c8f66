package render

import (
	"math"
	"slices"

	"github.com/san-kum/sierpinski/internal/geom"
)

// fillPolygon visits every pixel whose center lies inside poly (even-odd
// rule), clipped to a width x height grid. Coordinates are in pixels.
func fillPolygon(poly []geom.Coordinate, width, height int, visit func(x, y int)) {
	if len(poly) < 3 || width <= 0 || height <= 0 {
		return
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if math.IsNaN(minY) || math.IsNaN(maxY) || math.IsInf(minY, 0) || math.IsInf(maxY, 0) {
		return
	}
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(height-1, int(math.Ceil(maxY)))

	xs := make([]float64, 0, len(poly))
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if (a.Y <= yc) == (b.Y <= yc) {
				continue
			}
			xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := max(0, int(math.Ceil(xs[i]-0.5)))
			to := min(width, int(math.Ceil(xs[i+1]-0.5)))
			for x := from; x < to; x++ {
				visit(x, y)
			}
		}
	}
}
