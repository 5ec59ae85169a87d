package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rps_arena/internal/repository"
)

const defaultLeaderboardSize = 50

// StatsHandler serves aggregates over the match history table. Routes
// using it are only registered when a database is configured.
type StatsHandler struct {
	history *repository.HistoryRepository
}

func NewStatsHandler(history *repository.HistoryRepository) *StatsHandler {
	return &StatsHandler{history: history}
}

// PlayerStats returns win/loss/draw counts for one player.
func (h *StatsHandler) PlayerStats(c *gin.Context) {
	stats, err := h.history.StatsByPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PlayerHistory returns the player's most recent rounds.
func (h *StatsHandler) PlayerHistory(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	rows, err := h.history.RecentByPlayer(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": rows})
}

// Leaderboard returns players ranked by wins.
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	top, err := h.history.Leaderboard(c.Request.Context(), defaultLeaderboardSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": top})
}
