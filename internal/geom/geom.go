package geom

import "math"

// Coordinate is a point in surface-pixel space.
type Coordinate struct {
	X, Y float64
}

// Triangle is an ordered triple of points. The order only matters for path
// tracing.
type Triangle [3]Coordinate

// Division is the result of splitting a bounding triangle.
type Division struct {
	Center   Triangle
	Children [3]Triangle
}

// Midpoint returns the arithmetic mean of a and b on each axis.
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}

// Span is the signed horizontal distance between the midpoint of the first
// edge and the second vertex. Degenerate or mirrored triangles have a span
// of zero or less.
func Span(t Triangle) float64 {
	return Midpoint(t[0], t[1]).X - t[1].X
}

// Threshold returns the smallest span that still subdivides at the given
// device pixel scale. A non-positive scale counts as 1.
func Threshold(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return 1 / scale
}

// Subdivide splits t into its center triangle and three corner children.
// It reports false when t is already at display resolution; no division is
// produced in that case.
func Subdivide(t Triangle, scale float64) (Division, bool) {
	p0, p1, p2 := t[0], t[1], t[2]

	m01 := Midpoint(p0, p1)
	m12 := Midpoint(p1, p2)
	m20 := Midpoint(p2, p0)

	// NaN spans fail the comparison below, so test for them explicitly.
	span := m01.X - p1.X
	if math.IsNaN(span) || span < Threshold(scale) {
		return Division{}, false
	}

	return Division{
		Center: Triangle{m01, m12, m20},
		Children: [3]Triangle{
			{p0, m01, m20},
			{m01, p1, m12},
			{m20, m12, p2},
		},
	}, true
}

// Generations counts how many times t subdivides before every descendant
// terminates. All children share the same span, so one path is enough.
func Generations(t Triangle, scale float64) int {
	n := 0
	for {
		d, ok := Subdivide(t, scale)
		if !ok {
			return n
		}
		n++
		t = d.Children[0]
	}
}
