package domain

import "time"

// MatchResult is the outcome of one round from a single player's side.
type MatchResult string

const (
	MatchResultWin       MatchResult = "win"
	MatchResultLose      MatchResult = "lose"
	MatchResultDraw      MatchResult = "draw"
	MatchResultAbandoned MatchResult = "abandoned"
)

// MatchRecord is one append-only history row, written per participant when
// a round finishes or a session is abandoned.
type MatchRecord struct {
	ID           int64       `json:"id"`
	SessionID    string      `json:"session_id"`
	Round        int         `json:"round"`
	PlayerID     string      `json:"player_id"`
	OpponentID   string      `json:"opponent_id"`
	PlayerMove   Move        `json:"player_move,omitempty"`
	OpponentMove Move        `json:"opponent_move,omitempty"`
	Result       MatchResult `json:"result"`
	CreatedAt    time.Time   `json:"created_at"`
}

// PlayerStats aggregates a player's history rows.
type PlayerStats struct {
	PlayerID  string `json:"player_id"`
	Rounds    int    `json:"rounds"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Draws     int    `json:"draws"`
	Abandoned int    `json:"abandoned"`
}

// LeaderboardEntry is one row of the wins leaderboard.
type LeaderboardEntry struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Rounds   int    `json:"rounds"`
}
