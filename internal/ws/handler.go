package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades the connection and starts the client pumps. Players are
// anonymous: the id comes from the playerId query parameter, or is
// generated for connections that arrive without one.
func Handler(hub *Hub, allowedOrigin string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(c *gin.Context) {
		playerID := c.Query("playerId")
		if playerID == "" {
			playerID = "player-" + uuid.NewString()[:8]
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Warn("ws upgrade failed", "error", err)
			return
		}

		client := newClient(playerID, conn, hub)
		go client.writePump()
		hub.Register(client)
		go client.readPump()
	}
}
