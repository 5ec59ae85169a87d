package engine

import "rps_arena/internal/domain"

// playerRegistry tracks connected players and their room assignment.
// Insertion order is preserved so lobby pairing is first-come first-matched.
type playerRegistry struct {
	players map[string]*domain.Player
	order   []string
}

func newPlayerRegistry() *playerRegistry {
	return &playerRegistry{players: make(map[string]*domain.Player)}
}

// add inserts the player into the lobby. Returns false if already present.
func (r *playerRegistry) add(playerID string) bool {
	if _, ok := r.players[playerID]; ok {
		return false
	}
	r.players[playerID] = &domain.Player{ID: playerID, Room: domain.RoomLobby}
	r.order = append(r.order, playerID)
	return true
}

// remove deletes the entry and returns it, or nil if absent.
func (r *playerRegistry) remove(playerID string) *domain.Player {
	p, ok := r.players[playerID]
	if !ok {
		return nil
	}
	delete(r.players, playerID)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p
}

func (r *playerRegistry) get(playerID string) *domain.Player {
	return r.players[playerID]
}

func (r *playerRegistry) setRoom(playerID, room string) {
	if p, ok := r.players[playerID]; ok {
		p.Room = room
	}
}

// listInRoom returns room members in insertion order.
func (r *playerRegistry) listInRoom(room string) []*domain.Player {
	var out []*domain.Player
	for _, id := range r.order {
		if p := r.players[id]; p.Room == room {
			out = append(out, p)
		}
	}
	return out
}
