package render

import (
	"math"

	"github.com/san-kum/sierpinski/internal/geom"
)

// Call is one method invocation seen by a Recorder.
type Call struct {
	Op    string
	Point geom.Coordinate
	Style FillStyle
}

// Recorder is a Surface that keeps every call and every filled triangle.
// It never fails unless FillErr is set.
type Recorder struct {
	Width, Height int
	Scale         float64
	FillErr       error

	Calls []Call
	Fills []Polygon

	style FillStyle
	path  path
}

// NewRecorder creates a recorder reporting the given size and scale.
func NewRecorder(width, height int, scale float64) *Recorder {
	return &Recorder{Width: width, Height: height, Scale: scale}
}

func (r *Recorder) SetFillStyle(style FillStyle) {
	r.style = style
	r.Calls = append(r.Calls, Call{Op: "setFillStyle", Style: style})
}

func (r *Recorder) BeginPath() {
	r.path.begin()
	r.Calls = append(r.Calls, Call{Op: "beginPath"})
}

func (r *Recorder) MoveTo(p geom.Coordinate) {
	r.path.moveTo(p)
	r.Calls = append(r.Calls, Call{Op: "moveTo", Point: p})
}

func (r *Recorder) LineTo(p geom.Coordinate) {
	r.path.lineTo(p)
	r.Calls = append(r.Calls, Call{Op: "lineTo", Point: p})
}

func (r *Recorder) Fill() error {
	r.Calls = append(r.Calls, Call{Op: "fill", Style: r.style})
	r.Fills = append(r.Fills, Polygon{Points: r.path.take(), Style: r.style})
	return r.FillErr
}

func (r *Recorder) Size() (int, int)    { return r.Width, r.Height }
func (r *Recorder) PixelScale() float64 { return r.Scale }

// Resize updates the reported size for a width x height logical area.
func (r *Recorder) Resize(width, height int) error {
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	r.Width = int(math.Round(float64(width) * scale))
	r.Height = int(math.Round(float64(height) * scale))
	return nil
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Fills = r.Fills[:0]
}

// FillsWith counts the fills made with style.
func (r *Recorder) FillsWith(style FillStyle) int {
	n := 0
	for _, f := range r.Fills {
		if f.Style == style {
			n++
		}
	}
	return n
}
