package ws

import "rps_arena/internal/domain"

// ClientMessage is the inbound wire envelope. Type discriminates; the
// other fields are read depending on it.
type ClientMessage struct {
	Type   string `json:"type"`
	GameID string `json:"gameId,omitempty"`
	Move   string `json:"move,omitempty"`
}

// ServerMessage is the outbound wire envelope. Session carries a full
// snapshot; presence notices only set PlayerID.
type ServerMessage struct {
	Type      string          `json:"type"`
	PlayerID  string          `json:"player_id,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	Session   *domain.Session `json:"session,omitempty"`
}
