package fractal

import (
	"sync"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
	"github.com/san-kum/sierpinski/internal/engine"
	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/logging"
	"github.com/san-kum/sierpinski/internal/render"
)

// Options configures a Session.
type Options struct {
	FPS        float64
	Background render.FillStyle
	Foreground render.FillStyle
}

// DefaultOptions animates at 2 generations per second in the standard
// colors.
func DefaultOptions() Options {
	return Options{
		FPS:        2,
		Background: render.Background,
		Foreground: render.Foreground,
	}
}

// Session owns the frontier, the engine and the scheduler for one surface.
// Close must be called when the surface goes away.
type Session struct {
	mu         sync.Mutex
	surface    render.Surface
	engine     *engine.Engine
	sched      *anim.Scheduler
	opts       Options
	root       geom.Triangle
	frontier   []geom.Triangle
	started    bool
	generation int
	drawn      int

	// OnGeneration, when set, is called after every generation with the
	// generation number and the new frontier size.
	OnGeneration func(generation, frontier int)
}

// NewSession prepares a session. Nothing is drawn until Start.
func NewSession(surface render.Surface, host anim.Host, c clock.Clock, opts Options) *Session {
	s := &Session{
		surface: surface,
		engine:  engine.New(surface),
		opts:    opts,
	}
	s.sched = anim.New(host, c, opts.FPS, s.step)
	return s
}

// Start draws the root triangle and its first center, seeds the frontier
// and starts the scheduler. It returns false, doing nothing, when there is
// no surface to draw on.
func (s *Session) Start() bool {
	if s.surface == nil {
		logging.Logger().Debug("session start skipped: no surface")
		return false
	}

	s.mu.Lock()
	w, h := RealDimensions(s.surface)
	s.root = RootTriangle(w, h)
	s.engine.DrawTriangle(s.root, s.opts.Background)
	s.started = true
	s.generation, s.drawn, s.frontier = 0, 0, nil
	if d, ok := s.engine.DrawCenter(s.root, s.opts.Foreground); ok {
		s.frontier = d.Children[:]
		s.generation, s.drawn = 1, 1
	}
	gen, frontier := s.generation, len(s.frontier)
	s.mu.Unlock()

	logging.Logger().Info("fractal started",
		"width", w, "height", h, "scale", s.engine.Scale(), "frontier", frontier)
	if gen > 0 {
		s.notify(gen, frontier)
	}
	s.sched.Start()
	return true
}

// Restart clears a resizable surface to its new size and starts over.
func (s *Session) Restart(width, height int) error {
	s.sched.Cancel()
	if r, ok := s.surface.(render.Resizer); ok {
		if err := r.Resize(width, height); err != nil {
			return err
		}
	}
	s.Start()
	return nil
}

// Pause stops the animation without dropping the frontier.
func (s *Session) Pause() { s.sched.Cancel() }

// Resume continues a paused animation. It is a no-op once the construction
// has finished.
func (s *Session) Resume() {
	if s.Done() {
		return
	}
	s.sched.Start()
}

// Close cancels the scheduler and drops the frontier.
func (s *Session) Close() {
	s.sched.Cancel()
	s.mu.Lock()
	s.frontier = nil
	s.mu.Unlock()
}

func (s *Session) step() bool {
	s.mu.Lock()
	if len(s.frontier) == 0 {
		s.mu.Unlock()
		return false
	}
	s.frontier = s.engine.AdvanceGeneration(s.frontier, s.opts.Foreground)
	n := len(s.frontier)
	if n > 0 {
		// Every drawn center contributes exactly three children.
		s.generation++
		s.drawn += n / 3
	}
	gen := s.generation
	s.mu.Unlock()

	if n == 0 {
		logging.Logger().Info("fractal complete", "generations", gen)
		return false
	}
	logging.Logger().Debug("generation advanced", "generation", gen, "frontier", n)
	s.notify(gen, n)
	return true
}

func (s *Session) notify(gen, n int) {
	if s.OnGeneration != nil {
		s.OnGeneration(gen, n)
	}
}

// Frontier returns a copy of the triangles still to be subdivided.
func (s *Session) Frontier() []geom.Triangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]geom.Triangle, len(s.frontier))
	copy(out, s.frontier)
	return out
}

// Root is the triangle laid out by the last Start.
func (s *Session) Root() geom.Triangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Generation is the number of generations that drew center triangles.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Drawn is the number of center triangles drawn so far.
func (s *Session) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}

// Done reports whether the construction reached full resolution.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && len(s.frontier) == 0
}

// State exposes the scheduler state.
func (s *Session) State() anim.State { return s.sched.State() }
