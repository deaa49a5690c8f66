// Package anim drives a callback at a target rate on top of a host's frame
// loop.
//
// A [Host] offers frame opportunities one request at a time, the way a
// browser offers requestAnimationFrame or a GUI toolkit offers its draw
// loop. A [Scheduler] keeps asking for the next opportunity and only calls
// its tick function once 1/fps has elapsed since the previous tick. When
// tick returns false the scheduler stops asking; only an explicit Start
// resumes it.
//
// # State Machine
//
//	Idle ──Start──▶ Running ──tick false / Cancel──▶ Stopped
//	                   ▲                                │
//	                   └──────────────Start─────────────┘
//
// At most one frame request is outstanding at any time. After Cancel
// returns, tick is never called again until the next Start, even if the
// host still delivers a frame it had already queued.
//
// [ClockHost] serves frames from a clock.Clock and [LoopHost] from an
// external render loop that calls Poll once per frame.
package anim
