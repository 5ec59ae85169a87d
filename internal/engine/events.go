package engine

import (
	"sync"

	"rps_arena/internal/domain"
)

// EventType discriminates engine events.
type EventType string

const (
	EventPlayerAdded    EventType = "player:added"
	EventPlayerRemoved  EventType = "player:removed"
	EventRoomJoined     EventType = "room:joined"
	EventRoomLeft       EventType = "room:left"
	EventSessionCreated EventType = "session:created"
	EventSessionUpdated EventType = "session:updated"
	EventSessionDeleted EventType = "session:deleted"
)

// Event is one state-change notification. Only the fields relevant to its
// Type are set; Player and Session carry snapshots, never live records.
type Event struct {
	Type      EventType       `json:"type"`
	Player    *domain.Player  `json:"player,omitempty"`
	PlayerID  string          `json:"player_id,omitempty"`
	Room      string          `json:"room,omitempty"`
	Session   *domain.Session `json:"session,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
}

// Bus hands events to subscribers synchronously, in emission order, before
// the operation that produced them returns. Subscribers run inside the
// engine's critical section and must not call back into mutating or query
// operations; hand work off to a goroutine instead.
type Bus struct {
	mu   sync.RWMutex
	subs []func(Event)
}

// Subscribe registers fn for every future event.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *Bus) publish(events ...Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}
