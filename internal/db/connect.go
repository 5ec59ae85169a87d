package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"rps_arena/internal/logger"
)

// Connect opens and pings a pgx pool. The caller only invokes this when a
// DSN is configured; a broken DSN is fatal.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
