package engine

import (
	"testing"

	"rps_arena/internal/domain"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		a, b domain.Move
		want Outcome
	}{
		{domain.MoveRock, domain.MoveRock, OutcomeDraw},
		{domain.MoveRock, domain.MovePaper, OutcomeB},
		{domain.MoveRock, domain.MoveScissors, OutcomeA},
		{domain.MovePaper, domain.MoveRock, OutcomeA},
		{domain.MovePaper, domain.MovePaper, OutcomeDraw},
		{domain.MovePaper, domain.MoveScissors, OutcomeB},
		{domain.MoveScissors, domain.MoveRock, OutcomeB},
		{domain.MoveScissors, domain.MovePaper, OutcomeA},
		{domain.MoveScissors, domain.MoveScissors, OutcomeDraw},
	}

	for _, tc := range cases {
		if got := Resolve(tc.a, tc.b); got != tc.want {
			t.Errorf("Resolve(%s, %s) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestResolveAntiSymmetric(t *testing.T) {
	moves := []domain.Move{domain.MoveRock, domain.MovePaper, domain.MoveScissors}

	for _, a := range moves {
		for _, b := range moves {
			got, flipped := Resolve(a, b), Resolve(b, a)
			if a == b {
				if got != OutcomeDraw {
					t.Errorf("Resolve(%s, %s) = %v; want draw", a, b, got)
				}
				continue
			}
			if got == OutcomeA && flipped != OutcomeB {
				t.Errorf("Resolve(%s, %s) and Resolve(%s, %s) both favor the same hand", a, b, b, a)
			}
			if got == OutcomeDraw {
				t.Errorf("Resolve(%s, %s) = draw for distinct hands", a, b)
			}
		}
	}
}
