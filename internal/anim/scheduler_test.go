package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
)

// manualHost queues frame callbacks and ignores Cancel, like a host whose
// frame was already dispatched when the scheduler withdrew it.
type manualHost struct {
	queued []func()
}

type ignoredRequest struct{}

func (ignoredRequest) Cancel() {}

func (h *manualHost) RequestFrame(fn func()) anim.Request {
	h.queued = append(h.queued, fn)
	return ignoredRequest{}
}

func (h *manualHost) deliver() int {
	fns := h.queued
	h.queued = nil
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

var _ = Describe("Scheduler", func() {
	var (
		clk   *clock.FakeClock
		host  *anim.ClockHost
		start time.Time
		times []time.Duration
	)

	recordingTick := func(result func(n int) bool) anim.TickFunc {
		return func() bool {
			times = append(times, clk.Now().Sub(start))
			return result(len(times))
		}
	}
	forever := func(int) bool { return true }

	BeforeEach(func() {
		start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		clk = clock.Fake(start)
		host = anim.NewClockHost(clk, 16*time.Millisecond)
		times = nil
	})

	It("starts idle and never ticks before Start", func() {
		s := anim.New(host, clk, 2, recordingTick(forever))
		clk.Advance(5 * time.Second)

		Expect(s.State()).To(Equal(anim.Idle))
		Expect(times).To(BeEmpty())
		Expect(clk.Pending()).To(Equal(0))
	})

	It("derives the interval from fps", func() {
		Expect(anim.New(host, clk, 2, nil).Interval()).To(Equal(500 * time.Millisecond))
		Expect(anim.New(host, clk, 0, nil).Interval()).To(Equal(time.Second))
		Expect(anim.New(host, clk, -3, nil).Interval()).To(Equal(time.Second))
	})

	Context("at 2 fps on a 16ms host", func() {
		It("ticks no faster than the interval and within one frame of it", func() {
			s := anim.New(host, clk, 2, recordingTick(forever))
			s.Start()
			clk.Advance(5 * time.Second)

			Expect(s.State()).To(Equal(anim.Running))
			Expect(len(times)).To(BeNumerically(">=", 9))
			Expect(times[0]).To(BeNumerically("<=", 516*time.Millisecond))
			for i := 1; i < len(times); i++ {
				gap := times[i] - times[i-1]
				Expect(gap).To(BeNumerically(">=", 500*time.Millisecond))
				Expect(gap).To(BeNumerically("<=", 516*time.Millisecond))
			}
			Expect(s.Ticks()).To(Equal(len(times)))
		})

		It("keeps exactly one request outstanding", func() {
			s := anim.New(host, clk, 2, recordingTick(forever))
			s.Start()
			s.Start()
			Expect(clk.Pending()).To(Equal(1))

			clk.Advance(100 * time.Millisecond)
			Expect(clk.Pending()).To(Equal(1))
		})

		It("resets the timing when started again while running", func() {
			s := anim.New(host, clk, 2, recordingTick(forever))
			s.Start()
			clk.Advance(400 * time.Millisecond)
			s.Start()
			clk.Advance(400 * time.Millisecond)

			Expect(times).To(BeEmpty())

			clk.Advance(200 * time.Millisecond)
			Expect(times).To(HaveLen(1))
		})
	})

	Context("when tick reports completion", func() {
		It("stops requesting frames", func() {
			s := anim.New(host, clk, 10, recordingTick(func(n int) bool { return n < 3 }))
			s.Start()
			clk.Advance(10 * time.Second)

			Expect(times).To(HaveLen(3))
			Expect(s.State()).To(Equal(anim.Stopped))
			Expect(clk.Pending()).To(Equal(0))
		})

		It("only resumes on an explicit Start", func() {
			done := false
			s := anim.New(host, clk, 10, recordingTick(func(int) bool { return !done }))
			done = true
			s.Start()
			clk.Advance(time.Second)
			Expect(times).To(HaveLen(1))
			Expect(s.State()).To(Equal(anim.Stopped))

			clk.Advance(time.Second)
			Expect(times).To(HaveLen(1))

			done = false
			s.Start()
			Expect(s.State()).To(Equal(anim.Running))
			clk.Advance(time.Second)
			Expect(len(times)).To(BeNumerically(">", 1))
		})
	})

	Context("when cancelled", func() {
		It("never ticks again however many frames pass", func() {
			s := anim.New(host, clk, 2, recordingTick(forever))
			s.Start()
			clk.Advance(1100 * time.Millisecond)
			seen := len(times)
			Expect(seen).To(Equal(2))

			s.Cancel()
			Expect(s.State()).To(Equal(anim.Stopped))
			Expect(clk.Pending()).To(Equal(0))

			clk.Advance(time.Minute)
			Expect(times).To(HaveLen(seen))
		})

		It("ignores a frame the host delivers after Cancel", func() {
			mh := &manualHost{}
			ticks := 0
			s := anim.New(mh, clk, 1000, func() bool { ticks++; return true })

			s.Start()
			clk.Advance(time.Second)
			Expect(mh.deliver()).To(Equal(1))
			Expect(ticks).To(Equal(1))
			Expect(mh.queued).To(HaveLen(1))

			s.Cancel()
			clk.Advance(time.Second)
			mh.deliver()
			Expect(ticks).To(Equal(1))
			Expect(mh.queued).To(BeEmpty())
		})

		It("can be restarted", func() {
			s := anim.New(host, clk, 2, recordingTick(forever))
			s.Start()
			s.Cancel()
			clk.Advance(time.Second)
			Expect(times).To(BeEmpty())

			s.Start()
			clk.Advance(time.Second)
			Expect(times).To(HaveLen(1))
			Expect(s.State()).To(Equal(anim.Running))
		})

		It("is harmless on an idle scheduler", func() {
			s := anim.New(host, clk, 2, recordingTick(forever))
			s.Cancel()
			Expect(s.State()).To(Equal(anim.Idle))
		})
	})
})

var _ = Describe("ClockHost", func() {
	It("falls back to the default refresh", func() {
		h := anim.NewClockHost(clock.Real(), 0)
		Expect(h.Refresh()).To(Equal(anim.DefaultRefresh))
	})

	It("withdraws a cancelled request", func() {
		clk := clock.Fake(time.Now())
		h := anim.NewClockHost(clk, 10*time.Millisecond)
		fired := false
		req := h.RequestFrame(func() { fired = true })
		req.Cancel()
		clk.Advance(time.Second)
		Expect(fired).To(BeFalse())
	})
})

var _ = Describe("State", func() {
	DescribeTable("String",
		func(s anim.State, want string) { Expect(s.String()).To(Equal(want)) },
		Entry("idle", anim.Idle, "idle"),
		Entry("running", anim.Running, "running"),
		Entry("stopped", anim.Stopped, "stopped"),
		Entry("unknown", anim.State(9), "unknown"),
	)
})
