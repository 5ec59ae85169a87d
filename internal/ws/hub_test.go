package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rps_arena/internal/domain"
	"rps_arena/internal/engine"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng := engine.New(engine.Config{IDGenerator: func() string { return "abcd" }})
	hub := NewHub(eng, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := gin.New()
	r.GET("/ws", Handler(hub, ""))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, playerID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?playerId=" + playerID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", playerID, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readUntil consumes messages until want matches one, failing on timeout.
func readUntil(t *testing.T, conn *websocket.Conn, desc string, want func(ServerMessage) bool) ServerMessage {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %s: %v", desc, err)
		}
		var msg ServerMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal %q: %v", raw, err)
		}
		if want(msg) {
			return msg
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %v: %v", msg, err)
	}
}

func sessionWithStatus(status domain.SessionStatus) func(ServerMessage) bool {
	return func(m ServerMessage) bool {
		return m.Session != nil && m.Session.Status == status
	}
}

func TestFullGameOverWebSocket(t *testing.T) {
	srv := newTestServer(t)

	c1 := dial(t, srv, "p1")
	readUntil(t, c1, "own presence notice", func(m ServerMessage) bool {
		return m.Type == MsgPlayerJoined && m.PlayerID == "p1"
	})

	c2 := dial(t, srv, "p2")

	// lobby members hear about the newcomer before the pairing pulls both out
	readUntil(t, c1, "p2 presence notice", func(m ServerMessage) bool {
		return m.Type == MsgPlayerJoined && m.PlayerID == "p2"
	})

	for _, conn := range []*websocket.Conn{c1, c2} {
		msg := readUntil(t, conn, "session snapshot", func(m ServerMessage) bool {
			return m.Type == MsgSessionCreated
		})
		if msg.Session.ID != "s-abcd" || msg.Session.PlayerA != "p1" || msg.Session.PlayerB != "p2" {
			t.Fatalf("session snapshot = %+v", msg.Session)
		}
	}

	// zero-delay config: matched to active fires immediately
	readUntil(t, c1, "active snapshot", sessionWithStatus(domain.StatusActive))
	readUntil(t, c2, "active snapshot", sessionWithStatus(domain.StatusActive))

	send(t, c1, ClientMessage{Type: MsgMoveSelect, GameID: "s-abcd", Move: "rock"})
	send(t, c2, ClientMessage{Type: MsgMoveSelect, GameID: "s-abcd", Move: "scissors"})

	final := readUntil(t, c2, "finished snapshot", sessionWithStatus(domain.StatusFinished))
	if final.Session.Winner != "p1" || final.Session.ScoreA != 1 || final.Session.ScoreB != 0 {
		t.Fatalf("final snapshot = %+v; want p1 winning 1-0", final.Session)
	}

	// leaving abandons the session for the remaining player
	send(t, c1, ClientMessage{Type: MsgGameLeave, GameID: "s-abcd"})
	abandoned := readUntil(t, c2, "abandoned snapshot", sessionWithStatus(domain.StatusAbandoned))
	if abandoned.Session.AbandonedBy != "p1" {
		t.Fatalf("abandoned_by = %s; want p1", abandoned.Session.AbandonedBy)
	}
}

func TestGeneratedPlayerID(t *testing.T) {
	srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msg := readUntil(t, conn, "welcome message", func(m ServerMessage) bool {
		return m.Type == MsgConnected
	})
	if !strings.HasPrefix(msg.PlayerID, "player-") {
		t.Fatalf("generated id = %q; want player- prefix", msg.PlayerID)
	}
}

func TestInvalidEnvelopesAreDropped(t *testing.T) {
	srv := newTestServer(t)

	c1 := dial(t, srv, "p1")
	c2 := dial(t, srv, "p2")
	readUntil(t, c1, "active snapshot", sessionWithStatus(domain.StatusActive))

	// garbage, unknown type alike: connection stays usable
	if err := c1.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	send(t, c1, ClientMessage{Type: "no:such:type"})
	send(t, c1, ClientMessage{Type: MsgMoveSelect, GameID: "s-abcd", Move: "dynamite"})

	send(t, c1, ClientMessage{Type: MsgMoveSelect, GameID: "s-abcd", Move: "paper"})
	send(t, c2, ClientMessage{Type: MsgMoveSelect, GameID: "s-abcd", Move: "rock"})

	final := readUntil(t, c1, "finished snapshot", sessionWithStatus(domain.StatusFinished))
	if final.Session.Winner != "p1" {
		t.Fatalf("winner = %s; want p1", final.Session.Winner)
	}
}
