package relay

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"

	"rps_arena/internal/engine"
)

const subjectPrefix = "arena.events"

// Publisher mirrors every engine event onto NATS so other processes can
// observe the stream without holding a websocket. Publishing is buffered
// client-side, so forwarding from inside the bus callback does not stall
// the engine.
type Publisher struct {
	conn *nats.Conn
	log  *slog.Logger
}

// Connect dials the NATS server at url.
func Connect(url string, log *slog.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url, nats.Name("rps-arena"))
	if err != nil {
		return nil, err
	}
	log.Info("nats relay connected", "url", url)
	return &Publisher{conn: conn, log: log}, nil
}

// Attach registers the publisher on the engine bus.
func (p *Publisher) Attach(eng *engine.Engine) {
	eng.Subscribe(p.onEvent)
}

func (p *Publisher) onEvent(ev engine.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("relay marshal failed", "type", ev.Type, "error", err)
		return
	}

	subject := subjectPrefix + "." + strings.ReplaceAll(string(ev.Type), ":", ".")
	if err := p.conn.Publish(subject, data); err != nil {
		p.log.Error("relay publish failed", "subject", subject, "error", err)
	}
}

// Close flushes and drops the connection.
func (p *Publisher) Close() {
	_ = p.conn.Flush()
	p.conn.Close()
}
