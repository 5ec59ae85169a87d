package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rps_arena/internal/engine"
)

// ArenaHandler exposes read-only views over the engine facade. It only
// ever sees snapshots; mutation happens through the websocket transport.
type ArenaHandler struct {
	engine *engine.Engine
}

func NewArenaHandler(eng *engine.Engine) *ArenaHandler {
	return &ArenaHandler{engine: eng}
}

// ListSessions returns every tracked session.
func (h *ArenaHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.engine.ListSessions()})
}

// GetSession returns one session by id.
func (h *ArenaHandler) GetSession(c *gin.Context) {
	sess, ok := h.engine.GetSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ListPlayers returns every registered player.
func (h *ArenaHandler) ListPlayers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": h.engine.ListPlayers()})
}

// GetPlayer returns one player by id.
func (h *ArenaHandler) GetPlayer(c *gin.Context) {
	p, ok := h.engine.GetPlayer(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
