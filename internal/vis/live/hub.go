// Package live serves the animation to browsers: every frame is rasterized,
// encoded once and pushed over websockets to the connected clients.
package live

import "sync"

// Update is one encoded frame. Updates are immutable once published.
type Update struct {
	Step      int     `json:"step"`
	Title     string  `json:"title"`
	Mode      string  `json:"mode"`
	Active    int     `json:"active"`
	Picking   int     `json:"picking"`
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
	PNG       []byte  `json:"png"` // base64 in JSON
}

// Hub fans updates out to subscribers. Each subscriber only ever holds the
// latest update; older ones are dropped when it falls behind.
type Hub struct {
	mu     sync.Mutex
	latest *Update
	subs   map[chan *Update]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan *Update]struct{})}
}

// Publish replaces the latest update and offers it to every subscriber.
func (h *Hub) Publish(u *Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = u
	for ch := range h.subs {
		offer(ch, u)
	}
}

// offer puts u in ch, replacing an unread update.
func offer(ch chan *Update, u *Update) {
	select {
	case ch <- u:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- u:
	default:
	}
}

// Subscribe returns a channel carrying the latest update, primed with the
// current one, and a function that ends the subscription.
func (h *Hub) Subscribe() (<-chan *Update, func()) {
	ch := make(chan *Update, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	if h.latest != nil {
		ch <- h.latest
	}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
		})
	}
}

// Latest returns the most recent update, nil before the first frame.
func (h *Hub) Latest() *Update {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Subscribers is the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
