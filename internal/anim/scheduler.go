package anim

import (
	"math"
	"sync"
	"time"

	"github.com/san-kum/sierpinski/internal/clock"
	"github.com/san-kum/sierpinski/internal/logging"
)

// State is the lifecycle state of a Scheduler.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// TickFunc advances the animation by one step. Returning false stops the
// scheduler.
type TickFunc func() bool

// Scheduler calls a TickFunc at most fps times per second.
//
// Tick runs with the scheduler's lock held, so Cancel from another
// goroutine waits for a tick in progress to finish. A TickFunc must not call
// Start or Cancel on its own scheduler.
type Scheduler struct {
	mu       sync.Mutex
	host     Host
	clock    clock.Clock
	interval time.Duration
	tick     TickFunc

	state    State
	lastTick time.Time
	pending  Request
	epoch    uint64
	ticks    int
}

// New creates an idle scheduler. A non-positive or non-finite fps counts
// as 1.
func New(host Host, c clock.Clock, fps float64, tick TickFunc) *Scheduler {
	return &Scheduler{
		host:     host,
		clock:    c,
		interval: IntervalFor(fps),
		tick:     tick,
	}
}

// IntervalFor returns the tick interval New uses for fps.
func IntervalFor(fps float64) time.Duration {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		fps = 1
	}
	return time.Duration(float64(time.Second) / fps)
}

// Interval is the minimum time between two ticks.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks returns how many times tick has been called.
func (s *Scheduler) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Start records the current time as the last tick and begins requesting
// frames. Starting a running scheduler only resets the timing; it never
// adds a second request.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastTick = s.clock.Now()
	if s.state == Running && s.pending != nil {
		return
	}
	s.state = Running
	s.requestLocked()
	logging.Logger().Debug("scheduler started", "interval", s.interval)
}

// Cancel withdraws the pending frame request and stops the scheduler.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	if s.state == Running {
		s.state = Stopped
		logging.Logger().Debug("scheduler cancelled", "ticks", s.ticks)
	}
}

func (s *Scheduler) requestLocked() {
	epoch := s.epoch
	s.pending = s.host.RequestFrame(func() { s.frame(epoch) })
}

func (s *Scheduler) frame(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Frames requested before a Cancel may still be delivered by hosts that
	// cannot withdraw them.
	if epoch != s.epoch || s.state != Running {
		return
	}
	s.pending = nil

	if s.clock.Now().Sub(s.lastTick) >= s.interval {
		more := s.tick()
		s.ticks++
		s.lastTick = s.clock.Now()
		if !more {
			s.state = Stopped
			logging.Logger().Debug("scheduler finished", "ticks", s.ticks)
			return
		}
	}
	s.requestLocked()
}
