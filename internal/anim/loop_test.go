package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
)

var _ = Describe("LoopHost", func() {
	var host *anim.LoopHost

	BeforeEach(func() {
		host = anim.NewLoopHost()
	})

	It("runs requests on the next poll only", func() {
		ran := 0
		host.RequestFrame(func() { ran++ })
		Expect(ran).To(Equal(0))
		Expect(host.Poll()).To(Equal(1))
		Expect(ran).To(Equal(1))
		Expect(host.Poll()).To(Equal(0))
	})

	It("defers requests made during a poll", func() {
		var again func()
		n := 0
		again = func() {
			n++
			host.RequestFrame(again)
		}
		host.RequestFrame(again)

		host.Poll()
		Expect(n).To(Equal(1))
		Expect(host.Pending()).To(Equal(1))
		host.Poll()
		Expect(n).To(Equal(2))
	})

	It("skips cancelled requests", func() {
		ran := false
		req := host.RequestFrame(func() { ran = true })
		req.Cancel()
		Expect(host.Poll()).To(Equal(0))
		Expect(ran).To(BeFalse())
		Expect(host.Pending()).To(Equal(0))
	})

	It("drives a scheduler once per poll", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		clk := clock.Fake(start)
		ticks := 0
		s := anim.New(host, clk, 10, func() bool {
			ticks++
			return ticks < 3
		})
		s.Start()

		for i := 0; i < 10; i++ {
			clk.Advance(50 * time.Millisecond)
			host.Poll()
		}
		Expect(ticks).To(Equal(3))
		Expect(s.State()).To(Equal(anim.Stopped))
		Expect(host.Pending()).To(Equal(0))
	})
})
