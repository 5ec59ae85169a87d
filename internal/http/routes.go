package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rps_arena/internal/config"
	"rps_arena/internal/engine"
	"rps_arena/internal/http/handlers"
	"rps_arena/internal/http/middleware"
	"rps_arena/internal/repository"
	"rps_arena/internal/ws"
)

// RegisterRoutes wires the full HTTP surface: the websocket endpoint, the
// read-only query API, probes and metrics. db may be nil, which disables
// the history-backed routes.
func RegisterRoutes(r *gin.Engine, eng *engine.Engine, hub *ws.Hub, db *pgxpool.Pool, cfg *config.Config, version string) {
	r.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(db, version)
	r.GET("/health", healthHandler.Liveness)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/ws", ws.Handler(hub, cfg.AllowedOrigin))

	arenaHandler := handlers.NewArenaHandler(eng)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	{
		v1.GET("/sessions", arenaHandler.ListSessions)
		v1.GET("/sessions/:id", arenaHandler.GetSession)
		v1.GET("/players", arenaHandler.ListPlayers)
		v1.GET("/players/:id", arenaHandler.GetPlayer)
	}

	if db != nil {
		statsHandler := handlers.NewStatsHandler(repository.NewHistoryRepository(db))
		v1.GET("/stats/:id", statsHandler.PlayerStats)
		v1.GET("/history/:id", statsHandler.PlayerHistory)
		v1.GET("/leaderboard", statsHandler.Leaderboard)
	}
}
