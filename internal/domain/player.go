package domain

// RoomLobby is the waiting room. Every player who is not inside a session
// is assigned here; absence from the registry means disconnected.
const RoomLobby = "lobby"

// Player is one connected participant and the room it currently occupies.
type Player struct {
	ID   string `json:"id"`
	Room string `json:"room"`
}

// InLobby reports whether the player is waiting to be matched.
func (p *Player) InLobby() bool {
	return p.Room == RoomLobby
}
