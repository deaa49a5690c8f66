package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/sierpinski/internal/geom"
)

// Polygon is one filled path recorded by SVG.
type Polygon struct {
	Points []geom.Coordinate
	Style  FillStyle
}

// SVG records filled paths and serialises them as an SVG document. The
// viewBox uses logical units; width and height are physical pixels.
type SVG struct {
	Polygons []Polygon

	width, height int
	scale         float64
	style         FillStyle
	path          path
}

// NewSVG creates a recorder for a width x height logical area.
func NewSVG(width, height int, scale float64) *SVG {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return &SVG{width: width, height: height, scale: scale}
}

func (s *SVG) SetFillStyle(style FillStyle) { s.style = style }
func (s *SVG) BeginPath()                   { s.path.begin() }
func (s *SVG) MoveTo(p geom.Coordinate)     { s.path.moveTo(p) }
func (s *SVG) LineTo(p geom.Coordinate)     { s.path.lineTo(p) }

func (s *SVG) Fill() error {
	pts := s.path.take()
	if len(pts) < 3 {
		return nil
	}
	s.Polygons = append(s.Polygons, Polygon{Points: pts, Style: s.style})
	return nil
}

func (s *SVG) Size() (int, int) {
	return int(math.Round(float64(s.width) * s.scale)), int(math.Round(float64(s.height) * s.scale))
}

func (s *SVG) PixelScale() float64 { return s.scale }

// WriteTo writes the document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	pw, ph := s.Size()

	fmt.Fprintf(cw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, pw, ph, s.width, s.height)

	for _, p := range s.Polygons {
		fmt.Fprint(cw, `<polygon points="`)
		for i, pt := range p.Points {
			if i > 0 {
				fmt.Fprint(cw, " ")
			}
			fmt.Fprintf(cw, "%.3f,%.3f", pt.X, pt.Y)
		}
		fmt.Fprintf(cw, "\" fill=\"%s\"/>\n", p.Style.Hex())
	}
	fmt.Fprint(cw, "</svg>\n")

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
