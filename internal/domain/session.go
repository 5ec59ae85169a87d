package domain

// SessionStatus is the phase of a session's state machine.
type SessionStatus string

const (
	StatusMatched   SessionStatus = "matched"
	StatusActive    SessionStatus = "active"
	StatusResolving SessionStatus = "resolving"
	StatusFinished  SessionStatus = "finished"
	StatusAbandoned SessionStatus = "abandoned"
)

// WinnerDraw is the winner sentinel recorded when both players threw the
// same hand.
const WinnerDraw = "draw"

// Session is one two-player contest. It is created the instant two lobby
// players are available and mutated only by the engine.
type Session struct {
	ID          string        `json:"id"`
	PlayerA     string        `json:"player_a"`
	PlayerB     string        `json:"player_b"`
	Status      SessionStatus `json:"status"`
	MoveA       Move          `json:"move_a,omitempty"`
	MoveB       Move          `json:"move_b,omitempty"`
	Winner      string        `json:"winner,omitempty"`
	RematchA    bool          `json:"rematch_a"`
	RematchB    bool          `json:"rematch_b"`
	ScoreA      int           `json:"score_a"`
	ScoreB      int           `json:"score_b"`
	AbandonedBy string        `json:"abandoned_by,omitempty"`
	Round       int           `json:"round"`
}

// IsParticipant reports whether playerID is one of the two contestants.
func (s *Session) IsParticipant(playerID string) bool {
	return playerID == s.PlayerA || playerID == s.PlayerB
}

// Opponent returns the other participant's id, or "" for a non-participant.
func (s *Session) Opponent(playerID string) string {
	switch playerID {
	case s.PlayerA:
		return s.PlayerB
	case s.PlayerB:
		return s.PlayerA
	}
	return ""
}

// Clone returns an independent copy, safe to hand to subscribers while the
// engine keeps mutating the original.
func (s *Session) Clone() *Session {
	c := *s
	return &c
}
