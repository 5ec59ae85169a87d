package ws

import (
	"log/slog"
	"sync"

	"rps_arena/internal/domain"
	"rps_arena/internal/engine"
)

// Hub is the transport side of the event contract: it keeps one connection
// per player, maps engine rooms onto broadcast groups, and translates
// engine events into outbound envelopes. It never reads engine state
// directly; everything it knows arrives through the event stream.
type Hub struct {
	engine *engine.Engine
	log    *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client            // player id keyed connections
	groups  map[string]map[string]*Client // room keyed member connections
}

func NewHub(eng *engine.Engine, log *slog.Logger) *Hub {
	h := &Hub{
		engine:  eng,
		log:     log,
		clients: make(map[string]*Client),
		groups:  make(map[string]map[string]*Client),
	}
	eng.Subscribe(h.onEvent)
	return h
}

// Register tracks the connection and introduces the player to the engine.
// A second connection for the same player id supersedes the first.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if old, ok := h.clients[c.PlayerID]; ok {
		old.close()
	}
	h.clients[c.PlayerID] = c
	h.mu.Unlock()

	c.trySend(ServerMessage{Type: MsgConnected, PlayerID: c.PlayerID})
	h.engine.AddPlayer(c.PlayerID)
}

// Unregister drops the connection and disconnects the player from the
// engine, unless a newer connection has already taken over the id.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	current := h.clients[c.PlayerID] == c
	if current {
		delete(h.clients, c.PlayerID)
	}
	h.mu.Unlock()

	if current {
		h.engine.RemovePlayer(c.PlayerID)
	}
}

// onEvent runs inside the engine's critical section; it only touches hub
// bookkeeping and non-blocking sends.
func (h *Hub) onEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventRoomJoined:
		h.joinGroup(ev.Room, ev.PlayerID)
		if ev.Room == domain.RoomLobby {
			h.broadcast(domain.RoomLobby, ServerMessage{Type: MsgPlayerJoined, PlayerID: ev.PlayerID})
		}
	case engine.EventRoomLeft:
		h.leaveGroup(ev.Room, ev.PlayerID)
		if ev.Room == domain.RoomLobby {
			h.broadcast(domain.RoomLobby, ServerMessage{Type: MsgPlayerLeft, PlayerID: ev.PlayerID})
		}
	case engine.EventSessionCreated:
		h.broadcast(ev.Session.ID, ServerMessage{Type: MsgSessionCreated, Session: ev.Session})
	case engine.EventSessionUpdated:
		h.broadcast(ev.Session.ID, ServerMessage{Type: MsgSessionUpdated, Session: ev.Session})
	case engine.EventSessionDeleted:
		h.broadcast(ev.SessionID, ServerMessage{Type: MsgSessionDeleted, SessionID: ev.SessionID})
		h.dropGroup(ev.SessionID)
	}
}

func (h *Hub) joinGroup(room, playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[playerID]
	if !ok {
		return
	}
	members, ok := h.groups[room]
	if !ok {
		members = make(map[string]*Client)
		h.groups[room] = members
	}
	members[playerID] = c
}

func (h *Hub) leaveGroup(room, playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.groups[room]; ok {
		delete(members, playerID)
		if len(members) == 0 {
			delete(h.groups, room)
		}
	}
}

func (h *Hub) dropGroup(room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.groups, room)
}

func (h *Hub) broadcast(room string, msg ServerMessage) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.groups[room]))
	for _, c := range h.groups[room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		c.trySend(msg)
	}
}
