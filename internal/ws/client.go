package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rps_arena/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 30 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1024
	sendBuffer     = 256
)

// Client is one websocket connection bound to a player id. Outbound
// messages are queued on send; a full queue drops the message rather than
// blocking the engine's event delivery.
type Client struct {
	PlayerID string

	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
	hub  *Hub
	log  *slog.Logger
}

func newClient(playerID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		PlayerID: playerID,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		done:     make(chan struct{}),
		hub:      hub,
		log:      hub.log.With("player", playerID),
	}
}

// close tears the connection down once; both pumps observe it.
func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// trySend queues an outbound message without blocking.
func (c *Client) trySend(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.log.Error("marshal outbound message", "type", msg.Type, "error", err)
		return
	}
	select {
	case <-c.done:
	case c.send <- data:
	default:
		c.log.Warn("send buffer full, dropping message", "type", msg.Type)
	}
}

// readPump dispatches inbound envelopes to the engine facade. Malformed
// envelopes are dropped here; the engine itself never sees them.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.log.Debug("dropping unparseable message", "error", err)
			continue
		}

		switch msg.Type {
		case MsgMoveSelect:
			move, ok := domain.ParseMove(msg.Move)
			if !ok {
				c.log.Debug("dropping invalid move", "move", msg.Move)
				continue
			}
			c.hub.engine.SubmitMove(msg.GameID, c.PlayerID, move)
		case MsgRematchRequest:
			c.hub.engine.RequestRematch(msg.GameID, c.PlayerID)
		case MsgGameLeave:
			c.hub.engine.LeaveSession(msg.GameID, c.PlayerID)
		default:
			c.log.Debug("dropping unknown message type", "type", msg.Type)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
