package engine

import "github.com/prometheus/client_golang/prometheus"

var (
	playersConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "arena_players_connected",
		Help: "Players currently tracked by the registry",
	})
	sessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "arena_sessions_active",
		Help: "Sessions currently tracked by the store",
	})
	sessionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arena_sessions_created_total",
		Help: "Total sessions created by matchmaking",
	})
	sessionsAbandoned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arena_sessions_abandoned_total",
		Help: "Total sessions that ended in abandonment",
	})
	movesSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arena_moves_submitted_total",
		Help: "Total accepted move submissions",
	})
	rematchesStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arena_rematches_total",
		Help: "Total rematch rounds started",
	})
)

func init() {
	prometheus.MustRegister(
		playersConnected,
		sessionsActive,
		sessionsCreated,
		sessionsAbandoned,
		movesSubmitted,
		rematchesStarted,
	)
}
