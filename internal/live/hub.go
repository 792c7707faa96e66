// Package live broadcasts document events to websocket followers. Viewers
// subscribe to one presentation and receive every event published for it
// (saves, slide navigation during presentation mode). Delivery is best-effort:
// a follower that cannot keep up is dropped rather than backpressuring the
// editor.
package live

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

const clientBuffer = 16

// Event is one message fanned out to a presentation's followers.
type Event struct {
	Type           string          `json:"type"`
	PresentationID string          `json:"presentationId"`
	Payload        json.RawMessage `json:"payload,omitempty"`
}

// Event types published by the editor.
const (
	EventSaved        = "presentation.saved"
	EventSlideChanged = "presentation.slideChanged"
	EventClosed       = "presentation.closed"
)

// Hub tracks followers per presentation id.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*subscriber]struct{}
	log   zerolog.Logger
}

type subscriber struct {
	ch   chan Event
	once sync.Once
}

func (s *subscriber) close() { s.once.Do(func() { close(s.ch) }) }

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*subscriber]struct{}),
		log:   log,
	}
}

// Subscribe registers a follower for the presentation and returns its event
// channel plus a cancel function. The channel is closed on cancel.
func (h *Hub) Subscribe(presentationID string) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, clientBuffer)}

	h.mu.Lock()
	room, ok := h.rooms[presentationID]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[presentationID] = room
	}
	room[sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if room, ok := h.rooms[presentationID]; ok {
			delete(room, sub)
			if len(room) == 0 {
				delete(h.rooms, presentationID)
			}
		}
		h.mu.Unlock()
		sub.close()
	}
	return sub.ch, cancel
}

// Publish fans the event out to every follower of the presentation. Slow
// followers (full buffer) are skipped; the websocket read loop notices the
// stall and drops the connection.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room := h.rooms[ev.PresentationID]
	for sub := range room {
		select {
		case sub.ch <- ev:
		default:
			h.log.Warn().
				Str("presentation_id", ev.PresentationID).
				Str("event", ev.Type).
				Msg("dropping event for slow follower")
		}
	}
}

// Followers reports how many subscribers the presentation currently has.
func (h *Hub) Followers(presentationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[presentationID])
}

// Run blocks until the context ends, then closes every room. It exists so the
// hub participates in service shutdown like other background components.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		for sub := range room {
			sub.close()
		}
		delete(h.rooms, id)
	}
}
