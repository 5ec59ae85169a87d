// ws_smoke dials two websocket clients against a running server, plays a
// single rock-vs-scissors round and prints the snapshots it receives.
// Useful as a quick end-to-end check against a deployed instance.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"rps_arena/internal/domain"
	"rps_arena/internal/ws"
)

func main() {
	base := os.Getenv("WS_URL")
	if base == "" {
		base = "ws://localhost:8080/ws"
	}

	c1 := dial(base, "smoke-1")
	defer c1.Close()
	c2 := dial(base, "smoke-2")
	defer c2.Close()

	sess := waitForStatus(c1, domain.StatusActive)
	fmt.Printf("matched: session=%s players=%s/%s\n", sess.ID, sess.PlayerA, sess.PlayerB)

	sendMove(c1, sess.ID, "rock")
	sendMove(c2, sess.ID, "scissors")

	final := waitForStatus(c2, domain.StatusFinished)
	fmt.Printf("finished: winner=%s score=%d-%d round=%d\n",
		final.Winner, final.ScoreA, final.ScoreB, final.Round)

	if final.Winner != "smoke-1" {
		log.Fatalf("unexpected winner %q", final.Winner)
	}
	fmt.Println("smoke test passed")
}

func dial(base, playerID string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(base+"?playerId="+playerID, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", playerID, err)
	}
	return conn
}

func sendMove(conn *websocket.Conn, sessionID, move string) {
	msg := ws.ClientMessage{Type: ws.MsgMoveSelect, GameID: sessionID, Move: move}
	if err := conn.WriteJSON(msg); err != nil {
		log.Fatalf("send move: %v", err)
	}
}

func waitForStatus(conn *websocket.Conn, want domain.SessionStatus) *domain.Session {
	deadline := time.Now().Add(15 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("waiting for %s: %v", want, err)
		}
		var msg ws.ServerMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Session != nil && msg.Session.Status == want {
			return msg.Session
		}
	}
}
