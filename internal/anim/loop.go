package anim

import "sync"

// LoopHost serves frame requests from an external render loop: each call
// to Poll runs the requests made before it started.
type LoopHost struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]func()
	order   []uint64
}

func NewLoopHost() *LoopHost {
	return &LoopHost{pending: make(map[uint64]func())}
}

func (h *LoopHost) RequestFrame(fn func()) Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.pending[h.next] = fn
	h.order = append(h.order, h.next)
	return loopRequest{h, h.next}
}

// Poll runs the outstanding requests in request order and returns how many
// ran. Requests made while polling wait for the next Poll.
func (h *LoopHost) Poll() int {
	h.mu.Lock()
	order := h.order
	h.order = nil
	h.mu.Unlock()

	n := 0
	for _, id := range order {
		h.mu.Lock()
		fn, ok := h.pending[id]
		delete(h.pending, id)
		h.mu.Unlock()
		if ok {
			fn()
			n++
		}
	}
	return n
}

// Pending is the number of requests waiting for Poll.
func (h *LoopHost) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

type loopRequest struct {
	h  *LoopHost
	id uint64
}

func (r loopRequest) Cancel() {
	r.h.mu.Lock()
	defer r.h.mu.Unlock()
	delete(r.h.pending, r.id)
}
