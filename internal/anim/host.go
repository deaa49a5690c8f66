package anim

import (
	"time"

	"github.com/san-kum/sierpinski/internal/clock"
)

// DefaultRefresh is the frame interval used by ClockHost when none is given.
const DefaultRefresh = time.Second / 60

// Request is a pending frame opportunity.
type Request interface {
	// Cancel withdraws the request. Cancelling a request that already
	// fired is a no-op.
	Cancel()
}

// Host invokes fn once at its next frame opportunity. fn must not be called
// before RequestFrame has returned.
type Host interface {
	RequestFrame(fn func()) Request
}

// ClockHost offers a frame opportunity every refresh interval of a clock.
type ClockHost struct {
	clock   clock.Clock
	refresh time.Duration
}

// NewClockHost creates a host on c. A non-positive refresh uses
// DefaultRefresh.
func NewClockHost(c clock.Clock, refresh time.Duration) *ClockHost {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	return &ClockHost{clock: c, refresh: refresh}
}

// Refresh is the interval between frame opportunities.
func (h *ClockHost) Refresh() time.Duration { return h.refresh }

func (h *ClockHost) RequestFrame(fn func()) Request {
	return timerRequest{h.clock.AfterFunc(h.refresh, fn)}
}

type timerRequest struct {
	timer *clock.Timer
}

func (r timerRequest) Cancel() { r.timer.Stop() }
