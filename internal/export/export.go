// Package export renders the fractal off-screen to PNG, SVG and animated
// GIF files.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
	"github.com/san-kum/sierpinski/internal/engine"
	"github.com/san-kum/sierpinski/internal/fractal"
	"github.com/san-kum/sierpinski/internal/logging"
	"github.com/san-kum/sierpinski/internal/render"
)

// maxFrames bounds the GIF loop; a 1e6 pixel wide root needs about 20.
const maxFrames = 64

var errNoFrames = errors.New("export: no frames captured")

// Single draws the root triangle and the complete fractal inside it onto s
// in one pass. It returns the number of center triangles drawn.
func Single(s render.Surface, opts fractal.Options) int {
	w, h := fractal.RealDimensions(s)
	root := fractal.RootTriangle(w, h)

	e := engine.New(s)
	e.DrawTriangle(root, opts.Background)
	return e.DrawAll(root, opts.Foreground)
}

// WritePNG renders a width x height logical image at scale and encodes it.
func WritePNG(w io.Writer, width, height int, scale float64, opts fractal.Options) (int, error) {
	r := render.NewRaster(width, height, scale)
	defer r.Close()

	n := Single(r, opts)
	if err := r.EncodePNG(w); err != nil {
		return n, fmt.Errorf("export: encode png: %w", err)
	}
	return n, nil
}

// WriteSVG renders the fractal as SVG polygons.
func WriteSVG(w io.Writer, width, height int, scale float64, opts fractal.Options) (int, error) {
	s := render.NewSVG(width, height, scale)
	n := Single(s, opts)
	if _, err := s.WriteTo(w); err != nil {
		return n, fmt.Errorf("export: write svg: %w", err)
	}
	return n, nil
}

// WriteGIF animates the construction one generation per frame, the same
// way the live views do, and encodes the frames as a looping GIF. The last
// frame is held for hold.
func WriteGIF(w io.Writer, width, height int, scale float64, opts fractal.Options, hold time.Duration) (int, error) {
	r := render.NewRaster(width, height, scale)
	defer r.Close()

	// Offline run: a fake clock advanced one interval at a time gives the
	// scheduler exactly one frame per generation.
	clk := clock.Fake(time.Unix(0, 0))
	interval := anim.IntervalFor(opts.FPS)
	host := anim.NewClockHost(clk, interval)

	pal := palette(opts)
	out := &gif.GIF{}
	delay := max(1, int(interval/(10*time.Millisecond)))
	capture := func(int, int) {
		out.Image = append(out.Image, quantize(r.Image(), pal))
		out.Delay = append(out.Delay, delay)
	}

	ses := fractal.NewSession(r, host, clk, opts)
	ses.OnGeneration = capture
	ses.Start()
	if len(out.Image) == 0 {
		// Degenerate root: still emit the single frame.
		capture(0, 0)
	}
	for i := 0; !ses.Done() && i < maxFrames; i++ {
		clk.Advance(interval)
	}
	ses.Close()

	if len(out.Image) == 0 {
		return 0, errNoFrames
	}
	if hold > 0 {
		out.Delay[len(out.Delay)-1] = int(hold / (10 * time.Millisecond))
	}

	logging.Logger().Info("gif encoded", "frames", len(out.Image), "generations", ses.Generation())
	if err := gif.EncodeAll(w, out); err != nil {
		return len(out.Image), fmt.Errorf("export: encode gif: %w", err)
	}
	return len(out.Image), nil
}

// palette holds transparency, both fill colors and a few blends between
// them for anti-aliased edges.
func palette(opts fractal.Options) color.Palette {
	bg, fg := opts.Background.Color, opts.Foreground.Color
	p := color.Palette{color.Transparent}
	const steps = 8
	for i := 0; i <= steps; i++ {
		p = append(p, blend(bg, fg, float64(i)/steps))
	}
	return p
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func quantize(img image.Image, pal color.Palette) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(p, p.Rect, img, img.Bounds().Min, draw.Src)
	return p
}
