// Package realtime pushes blessing inserts to invitation viewers. The
// server owns the insert path, so a local fan-out hub replaces a
// database change feed.
package realtime

import (
	"log/slog"
	"sync"
)

// Event is one frame pushed to a viewer.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	EventBlessing  = "blessing"
	EventCountdown = "countdown"
)

// Subscription is a live feed for one viewer of one client's invitation.
// Close releases it; closing twice is safe.
type Subscription struct {
	C <-chan Event

	hub      *Hub
	clientID string
	ch       chan Event
	once     sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.clientID, s.ch)
		close(s.ch)
	})
}

// Hub fans blessing events out to subscribers, keyed by client id.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan Event]struct{}
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[chan Event]struct{}),
		logger: logger,
	}
}

func (h *Hub) Subscribe(clientID string) *Subscription {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[clientID] == nil {
		h.subs[clientID] = make(map[chan Event]struct{})
	}
	h.subs[clientID][ch] = struct{}{}
	h.mu.Unlock()

	return &Subscription{C: ch, hub: h, clientID: clientID, ch: ch}
}

func (h *Hub) unsubscribe(clientID string, ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[clientID]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.subs, clientID)
		}
	}
}

// Broadcast delivers an event to every subscriber of clientID. Slow
// consumers with a full buffer are skipped rather than blocking the
// submit path.
func (h *Hub) Broadcast(clientID string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[clientID] {
		select {
		case ch <- ev:
		default:
			if h.logger != nil {
				h.logger.Warn("Dropping realtime event for slow subscriber", "client_id", clientID, "type", ev.Type)
			}
		}
	}
}

// NotifyBlessing pushes a freshly inserted blessing to the client's live
// viewers.
func (h *Hub) NotifyBlessing(clientID string, blessing interface{}) {
	h.Broadcast(clientID, Event{Type: EventBlessing, Payload: blessing})
}

// Subscribers reports how many viewers are attached to a client's feed.
func (h *Hub) Subscribers(clientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[clientID])
}
