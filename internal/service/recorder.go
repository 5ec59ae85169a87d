package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rps_arena/internal/domain"
	"rps_arena/internal/engine"
	"rps_arena/internal/repository"
)

const writeTimeout = 5 * time.Second

// Recorder subscribes to the engine's event stream and writes one history
// row per participant when a round finishes, and when a session is first
// abandoned. Writes happen on their own goroutines so the engine's
// synchronous event delivery never blocks on the database.
type Recorder struct {
	repo *repository.HistoryRepository
	log  *slog.Logger

	mu        sync.Mutex
	abandoned map[string]struct{}
}

func NewRecorder(repo *repository.HistoryRepository, log *slog.Logger) *Recorder {
	return &Recorder{
		repo:      repo,
		log:       log,
		abandoned: make(map[string]struct{}),
	}
}

// Attach registers the recorder on the engine bus.
func (rec *Recorder) Attach(eng *engine.Engine) {
	eng.Subscribe(rec.onEvent)
}

func (rec *Recorder) onEvent(ev engine.Event) {
	if ev.Type != engine.EventSessionUpdated || ev.Session == nil {
		return
	}

	switch ev.Session.Status {
	case domain.StatusFinished:
		go rec.writeRound(ev.Session)
	case domain.StatusAbandoned:
		// abandonment may surface repeatedly (leave, then disconnect);
		// record it once per session
		rec.mu.Lock()
		_, seen := rec.abandoned[ev.Session.ID]
		rec.abandoned[ev.Session.ID] = struct{}{}
		rec.mu.Unlock()
		if !seen {
			go rec.writeAbandonment(ev.Session)
		}
	}
}

func (rec *Recorder) writeRound(s *domain.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	rows := []*domain.MatchRecord{
		{
			SessionID:    s.ID,
			Round:        s.Round,
			PlayerID:     s.PlayerA,
			OpponentID:   s.PlayerB,
			PlayerMove:   s.MoveA,
			OpponentMove: s.MoveB,
			Result:       resultFor(s, s.PlayerA),
		},
		{
			SessionID:    s.ID,
			Round:        s.Round,
			PlayerID:     s.PlayerB,
			OpponentID:   s.PlayerA,
			PlayerMove:   s.MoveB,
			OpponentMove: s.MoveA,
			Result:       resultFor(s, s.PlayerB),
		},
	}

	for _, row := range rows {
		if err := rec.repo.Create(ctx, row); err != nil {
			rec.log.Error("history write failed",
				"session", s.ID, "player", row.PlayerID, "error", err)
		}
	}
}

func (rec *Recorder) writeAbandonment(s *domain.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row := &domain.MatchRecord{
		SessionID:  s.ID,
		Round:      s.Round,
		PlayerID:   s.AbandonedBy,
		OpponentID: s.Opponent(s.AbandonedBy),
		Result:     domain.MatchResultAbandoned,
	}
	if err := rec.repo.Create(ctx, row); err != nil {
		rec.log.Error("abandonment write failed", "session", s.ID, "error", err)
	}
}

func resultFor(s *domain.Session, playerID string) domain.MatchResult {
	switch s.Winner {
	case domain.WinnerDraw:
		return domain.MatchResultDraw
	case playerID:
		return domain.MatchResultWin
	}
	return domain.MatchResultLose
}
