package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sierpinski/internal/anim"
)

type frameMsg struct{ id uint64 }

// frameHost turns frame requests into tea.Tick commands. A cancelled
// request keeps its tick in flight; the message is dropped on arrival.
type frameHost struct {
	mu      sync.Mutex
	refresh time.Duration
	next    uint64
	pending map[uint64]func()
	unsent  []uint64
}

func newFrameHost(refresh time.Duration) *frameHost {
	if refresh <= 0 {
		refresh = anim.DefaultRefresh
	}
	return &frameHost{refresh: refresh, pending: make(map[uint64]func())}
}

func (h *frameHost) RequestFrame(fn func()) anim.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	id := h.next
	h.pending[id] = fn
	h.unsent = append(h.unsent, id)
	return frameRequest{h, id}
}

// cmd returns the ticks for requests made since the last call.
func (h *frameHost) cmd() tea.Cmd {
	h.mu.Lock()
	ids := h.unsent
	h.unsent = nil
	h.mu.Unlock()

	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, tea.Tick(h.refresh, func(time.Time) tea.Msg { return frameMsg{id} }))
	}
	return tea.Batch(cmds...)
}

// deliver runs the request id if it is still pending.
func (h *frameHost) deliver(id uint64) bool {
	h.mu.Lock()
	fn, ok := h.pending[id]
	delete(h.pending, id)
	h.mu.Unlock()

	if ok {
		fn()
	}
	return ok
}

func (h *frameHost) outstanding() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

func (h *frameHost) cancel(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.pending, id)
}

type frameRequest struct {
	h  *frameHost
	id uint64
}

func (r frameRequest) Cancel() { r.h.cancel(r.id) }
