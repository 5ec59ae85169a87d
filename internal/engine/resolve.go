package engine

import "rps_arena/internal/domain"

// Outcome is the result of a round seen from player A's side.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeA
	OutcomeB
)

// Resolve determines the round outcome for a pair of hands. Identical
// hands draw; otherwise rock beats scissors, scissors beats paper and
// paper beats rock.
func Resolve(a, b domain.Move) Outcome {
	if a == b {
		return OutcomeDraw
	}

	switch a {
	case domain.MoveRock:
		if b == domain.MoveScissors {
			return OutcomeA
		}
	case domain.MovePaper:
		if b == domain.MoveRock {
			return OutcomeA
		}
	case domain.MoveScissors:
		if b == domain.MovePaper {
			return OutcomeA
		}
	}

	return OutcomeB
}
