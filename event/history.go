package event

import "sync"

// History keeps the most recent events for readers on other goroutines
// Overflow: oldest events overwritten when full
type History struct {
	mu    sync.Mutex
	buf   []GameEvent
	next  int
	count int
}

// NewHistory creates a ring holding up to size events
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{buf: make([]GameEvent, size)}
}

// HandleEvent records ev, satisfying Listener
func (h *History) HandleEvent(ev GameEvent) {
	h.mu.Lock()
	h.buf[h.next] = ev
	h.next = (h.next + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
	h.mu.Unlock()
}

// Recent returns retained events oldest first
func (h *History) Recent() []GameEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]GameEvent, 0, h.count)
	start := (h.next - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		out = append(out, h.buf[(start+i)%len(h.buf)])
	}
	return out
}

// Len returns the number of retained events
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}
