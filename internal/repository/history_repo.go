package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rps_arena/internal/domain"
)

// HistoryRepository persists the append-only match history. It never feeds
// state back into the engine; it exists for stats and leaderboards.
type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, rec *domain.MatchRecord) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO match_history
		   (session_id, round, player_id, opponent_id, player_move, opponent_move, result)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		 RETURNING id, created_at`,
		rec.SessionID,
		rec.Round,
		rec.PlayerID,
		rec.OpponentID,
		string(rec.PlayerMove),
		string(rec.OpponentMove),
		string(rec.Result),
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *HistoryRepository) RecentByPlayer(ctx context.Context, playerID string, limit int) ([]*domain.MatchRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, session_id, round, player_id, opponent_id,
		        COALESCE(player_move, ''), COALESCE(opponent_move, ''), result, created_at
		 FROM match_history
		 WHERE player_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.MatchRecord
	for rows.Next() {
		rec := &domain.MatchRecord{}
		var playerMove, opponentMove, result string
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Round, &rec.PlayerID, &rec.OpponentID,
			&playerMove, &opponentMove, &result, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.PlayerMove = domain.Move(playerMove)
		rec.OpponentMove = domain.Move(opponentMove)
		rec.Result = domain.MatchResult(result)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) StatsByPlayer(ctx context.Context, playerID string) (*domain.PlayerStats, error) {
	stats := &domain.PlayerStats{PlayerID: playerID}
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE result = 'win'),
		        COUNT(*) FILTER (WHERE result = 'lose'),
		        COUNT(*) FILTER (WHERE result = 'draw'),
		        COUNT(*) FILTER (WHERE result = 'abandoned')
		 FROM match_history
		 WHERE player_id = $1`,
		playerID,
	).Scan(&stats.Rounds, &stats.Wins, &stats.Losses, &stats.Draws, &stats.Abandoned)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *HistoryRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT player_id,
		        COUNT(*) FILTER (WHERE result = 'win') AS wins,
		        COUNT(*) AS rounds
		 FROM match_history
		 GROUP BY player_id
		 ORDER BY wins DESC, rounds ASC, player_id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Wins, &e.Rounds); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
