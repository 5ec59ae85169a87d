package domain

// Move is one of the three playable hands.
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
)

// ParseMove validates a wire value against the three known hands.
func ParseMove(s string) (Move, bool) {
	switch Move(s) {
	case MoveRock, MovePaper, MoveScissors:
		return Move(s), true
	}
	return "", false
}
