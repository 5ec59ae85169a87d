package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"rps_arena/internal/domain"
	"rps_arena/internal/repository"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	applyMigrations(t, pool)
	return pool
}

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func TestHistoryRepository_CreateAndQuery(t *testing.T) {
	pool := testPool(t)
	repo := repository.NewHistoryRepository(pool)
	ctx := context.Background()

	rec := &domain.MatchRecord{
		SessionID:    "s-test",
		Round:        1,
		PlayerID:     "it-p1",
		OpponentID:   "it-p2",
		PlayerMove:   domain.MoveRock,
		OpponentMove: domain.MoveScissors,
		Result:       domain.MatchResultWin,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == 0 || rec.CreatedAt.IsZero() {
		t.Fatalf("returning clause not applied: %+v", rec)
	}

	recent, err := repo.RecentByPlayer(ctx, "it-p1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) == 0 || recent[0].OpponentID != "it-p2" {
		t.Fatalf("recent rows = %+v", recent)
	}

	stats, err := repo.StatsByPlayer(ctx, "it-p1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Wins < 1 || stats.Rounds < 1 {
		t.Fatalf("stats = %+v; want at least one win", stats)
	}
}

func TestHistoryRepository_AbandonedRecord(t *testing.T) {
	pool := testPool(t)
	repo := repository.NewHistoryRepository(pool)
	ctx := context.Background()

	rec := &domain.MatchRecord{
		SessionID:  "s-test",
		Round:      2,
		PlayerID:   "it-p3",
		OpponentID: "it-p4",
		Result:     domain.MatchResultAbandoned,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	recent, err := repo.RecentByPlayer(ctx, "it-p3", 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].PlayerMove != "" {
		t.Fatalf("abandoned row should have no move: %+v", recent)
	}
}
