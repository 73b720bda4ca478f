// Package realtime is a small in-process pub/sub hub. Services publish
// change notifications on named topics and the SSE endpoint relays them
// to connected clients, replacing poll-based refresh.
package realtime

import (
	"sync"
	"time"
)

// subBuffer bounds how many unread events a slow subscriber can hold.
const subBuffer = 16

// Event is a change notification on a topic.
type Event struct {
	Topic string    `json:"topic"`
	At    time.Time `json:"at"`
}

// Hub fans events out to topic subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

// Subscription receives events for one topic on C until closed.
type Subscription struct {
	C chan Event

	hub   *Hub
	topic string
	once  sync.Once
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers a listener on the topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	s := &Subscription{
		C:     make(chan Event, subBuffer),
		hub:   h,
		topic: topic,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[*Subscription]struct{})
	}
	h.subs[topic][s] = struct{}{}
	return s
}

// Publish notifies every subscriber of the topic. A subscriber whose
// buffer is full loses its oldest event; Publish never blocks.
func (h *Hub) Publish(topic string) {
	ev := Event{Topic: topic, At: time.Now()}
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[topic] {
		select {
		case s.C <- ev:
		default:
			select {
			case <-s.C:
			default:
			}
			select {
			case s.C <- ev:
			default:
			}
		}
	}
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		delete(s.hub.subs[s.topic], s)
		if len(s.hub.subs[s.topic]) == 0 {
			delete(s.hub.subs, s.topic)
		}
	})
}
