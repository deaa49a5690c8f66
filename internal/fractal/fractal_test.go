package fractal

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/render"
)

func dist(a, b geom.Coordinate) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func TestRootTriangleCentered(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantHeight    float64
	}{
		{"square", 100, 100, 50 * math.Sqrt(3)},
		{"tall", 100, 1000, 50 * math.Sqrt(3)},
		{"wide", 1000, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RootTriangle(tt.width, tt.height)
			top, left, right := r[0], r[1], r[2]

			if math.Abs(top.X-tt.width/2) > 1e-9 {
				t.Errorf("top not horizontally centered: %v", top)
			}
			if math.Abs(left.X+right.X-tt.width) > 1e-9 {
				t.Errorf("base not horizontally centered: %v %v", left, right)
			}
			if math.Abs(top.Y+left.Y-tt.height) > 1e-9 || left.Y != right.Y {
				t.Errorf("not vertically centered: %v", r)
			}
			if h := left.Y - top.Y; math.Abs(h-tt.wantHeight) > 1e-9 {
				t.Errorf("height = %f, want %f", h, tt.wantHeight)
			}

			a, b, c := dist(top, left), dist(left, right), dist(right, top)
			if math.Abs(a-b) > 1e-9 || math.Abs(b-c) > 1e-9 {
				t.Errorf("not equilateral: %f %f %f", a, b, c)
			}
			if b > tt.width+1e-9 {
				t.Errorf("base %f wider than area %f", b, tt.width)
			}
		})
	}
}

func TestRootTriangleDegenerate(t *testing.T) {
	r := RootTriangle(0, 0)
	if _, ok := geom.Subdivide(r, 1); ok {
		t.Errorf("zero-size root should be terminal: %v", r)
	}
	r = RootTriangle(-10, 50)
	if _, ok := geom.Subdivide(r, 1); ok {
		t.Errorf("negative-size root should be terminal: %v", r)
	}
}

func TestRealDimensions(t *testing.T) {
	w, h := RealDimensions(render.NewRecorder(200, 100, 2))
	if w != 100 || h != 50 {
		t.Errorf("got %vx%v, want 100x50", w, h)
	}
	w, h = RealDimensions(render.NewRecorder(30, 40, 0))
	if w != 30 || h != 40 {
		t.Errorf("zero scale: got %vx%v, want 30x40", w, h)
	}
}

type harness struct {
	clk *clock.FakeClock
	rec *render.Recorder
	ses *Session
}

func newHarness(width, height int, scale float64) *harness {
	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := render.NewRecorder(width, height, scale)
	host := anim.NewClockHost(clk, 16*time.Millisecond)
	return &harness{clk: clk, rec: rec, ses: NewSession(rec, host, clk, DefaultOptions())}
}

func TestSessionRunsToCompletion(t *testing.T) {
	h := newHarness(100, 100, 1)

	var gens, sizes []int
	h.ses.OnGeneration = func(g, n int) {
		gens = append(gens, g)
		sizes = append(sizes, n)
	}

	if !h.ses.Start() {
		t.Fatal("Start returned false")
	}
	if h.ses.Generation() != 1 || len(h.ses.Frontier()) != 3 {
		t.Fatalf("after start: generation %d frontier %d", h.ses.Generation(), len(h.ses.Frontier()))
	}
	if h.rec.Fills[0].Style != render.Background {
		t.Error("root must be drawn first in the background style")
	}

	h.clk.Advance(10 * time.Second)

	if !h.ses.Done() {
		t.Fatalf("not done, frontier %d", len(h.ses.Frontier()))
	}
	if h.ses.State() != anim.Stopped {
		t.Errorf("state = %v, want stopped", h.ses.State())
	}
	if h.clk.Pending() != 0 {
		t.Errorf("%d frame requests left after completion", h.clk.Pending())
	}
	if got, want := h.ses.Generation(), geom.Generations(h.ses.Root(), 1); got != want {
		t.Errorf("generation = %d, want %d", got, want)
	}
	if h.ses.Drawn() != 121 || h.rec.FillsWith(render.Foreground) != 121 {
		t.Errorf("drawn = %d, fills = %d, want 121", h.ses.Drawn(), h.rec.FillsWith(render.Foreground))
	}
	if h.rec.FillsWith(render.Background) != 1 {
		t.Errorf("background fills = %d, want 1", h.rec.FillsWith(render.Background))
	}

	wantSizes := []int{3, 9, 27, 81, 243}
	if len(sizes) != len(wantSizes) {
		t.Fatalf("frontier sizes %v, want %v", sizes, wantSizes)
	}
	for i := range wantSizes {
		if sizes[i] != wantSizes[i] || gens[i] != i+1 {
			t.Errorf("notification %d = (%d, %d), want (%d, %d)", i, gens[i], sizes[i], i+1, wantSizes[i])
		}
	}
}

func TestSessionOneGenerationPerTick(t *testing.T) {
	h := newHarness(100, 100, 1)
	h.ses.Start()

	h.clk.Advance(520 * time.Millisecond)
	if h.ses.Generation() != 2 {
		t.Errorf("after one interval generation = %d, want 2", h.ses.Generation())
	}
	h.clk.Advance(520 * time.Millisecond)
	if h.ses.Generation() != 3 {
		t.Errorf("after two intervals generation = %d, want 3", h.ses.Generation())
	}
}

func TestSessionWithoutSurface(t *testing.T) {
	clk := clock.Fake(time.Now())
	s := NewSession(nil, anim.NewClockHost(clk, 0), clk, DefaultOptions())

	if s.Start() {
		t.Error("Start without a surface should report false")
	}
	if s.State() != anim.Idle || clk.Pending() != 0 {
		t.Error("scheduler must not start without a surface")
	}
}

func TestSessionDegenerateSurface(t *testing.T) {
	h := newHarness(0, 0, 1)
	if !h.ses.Start() {
		t.Fatal("zero-size surface is still a surface")
	}
	h.clk.Advance(2 * time.Second)

	if !h.ses.Done() || h.ses.Generation() != 0 {
		t.Errorf("done=%v generation=%d", h.ses.Done(), h.ses.Generation())
	}
	if h.rec.FillsWith(render.Foreground) != 0 {
		t.Error("no centers should be drawn on a degenerate surface")
	}
}

func TestSessionPauseResumeClose(t *testing.T) {
	h := newHarness(100, 100, 1)
	h.ses.Start()

	h.ses.Pause()
	h.clk.Advance(5 * time.Second)
	if h.ses.Generation() != 1 {
		t.Errorf("paused session advanced to %d", h.ses.Generation())
	}

	h.ses.Resume()
	h.clk.Advance(520 * time.Millisecond)
	if h.ses.Generation() != 2 {
		t.Errorf("resumed session at %d, want 2", h.ses.Generation())
	}

	h.ses.Close()
	fills := len(h.rec.Fills)
	h.clk.Advance(time.Minute)
	if len(h.rec.Fills) != fills {
		t.Error("closed session kept drawing")
	}
	if len(h.ses.Frontier()) != 0 {
		t.Error("close should drop the frontier")
	}
}

func TestSessionRestartResizes(t *testing.T) {
	h := newHarness(100, 100, 1)
	h.ses.Start()
	h.clk.Advance(time.Second)

	if err := h.ses.Restart(200, 50); err != nil {
		t.Fatal(err)
	}
	if h.rec.Width != 200 || h.rec.Height != 50 {
		t.Errorf("recorder not resized: %dx%d", h.rec.Width, h.rec.Height)
	}
	if h.ses.Generation() != 1 {
		t.Errorf("restart should begin again, generation %d", h.ses.Generation())
	}
	if root := h.ses.Root(); root[0].X != 100 {
		t.Errorf("root not laid out for new size: %v", root)
	}
}
