package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"rps_arena/internal/domain"
)

const (
	// DefaultMatchedDelay is the pause between pairing and the first
	// playable state, giving both clients time to render the match screen.
	DefaultMatchedDelay = 3 * time.Second
	// DefaultRevealDelay is the countdown between both moves arriving and
	// the result being revealed.
	DefaultRevealDelay = 3 * time.Second
)

// sessionIDPrefix distinguishes session room refs from the lobby sentinel.
const sessionIDPrefix = "s-"

// idAttempts bounds session-id collision retries. A generator that cannot
// produce a fresh id within this many draws is misconfigured.
const idAttempts = 1000

// Config carries the engine's tunables. Zero delays are valid and make
// every timed transition fire immediately, which tests rely on.
type Config struct {
	MatchedDelay time.Duration
	RevealDelay  time.Duration
	// IDGenerator produces the random part of session ids. Defaults to a
	// short UUID-derived id.
	IDGenerator func() string
	Logger      *slog.Logger
}

// DefaultConfig returns production delays and the default id generator.
func DefaultConfig() Config {
	return Config{
		MatchedDelay: DefaultMatchedDelay,
		RevealDelay:  DefaultRevealDelay,
	}
}

func shortID() string {
	return uuid.NewString()[:8]
}

// Engine is the matchmaking and game-lifecycle core. All public operations
// serialize on one mutex; scheduler callbacks take the same mutex, so every
// operation, timer fires included, runs to completion atomically. State
// changes surface exclusively through the event bus.
type Engine struct {
	mu sync.Mutex

	matchedDelay time.Duration
	revealDelay  time.Duration
	newID        func() string

	players  *playerRegistry
	sessions *sessionStore
	timers   *scheduler
	bus      *Bus
	log      *slog.Logger
}

// New builds an engine from cfg.
func New(cfg Config) *Engine {
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = shortID
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Engine{
		matchedDelay: cfg.MatchedDelay,
		revealDelay:  cfg.RevealDelay,
		newID:        cfg.IDGenerator,
		players:      newPlayerRegistry(),
		sessions:     newSessionStore(),
		timers:       newScheduler(),
		bus:          &Bus{},
		log:          cfg.Logger,
	}
}

// Subscribe registers a listener for every engine event. See Bus for the
// re-entrancy constraint.
func (e *Engine) Subscribe(fn func(Event)) {
	e.bus.Subscribe(fn)
}

// AddPlayer registers the player in the lobby and pairs the two
// earliest-waiting lobby players into a new session when possible.
// Re-adding a known player is a no-op.
func (e *Engine) AddPlayer(playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.players.add(playerID) {
		return
	}
	playersConnected.Inc()

	p := e.players.get(playerID)
	events := []Event{
		{Type: EventPlayerAdded, Player: &domain.Player{ID: p.ID, Room: p.Room}},
		{Type: EventRoomJoined, PlayerID: playerID, Room: domain.RoomLobby},
	}

	if lobby := e.players.listInRoom(domain.RoomLobby); len(lobby) >= 2 {
		a, b := lobby[0], lobby[1]
		sess := e.createSession(a.ID, b.ID)

		events = append(events,
			Event{Type: EventRoomLeft, PlayerID: a.ID, Room: domain.RoomLobby},
			Event{Type: EventRoomLeft, PlayerID: b.ID, Room: domain.RoomLobby},
		)

		e.players.setRoom(a.ID, sess.ID)
		e.players.setRoom(b.ID, sess.ID)

		events = append(events,
			Event{Type: EventRoomJoined, PlayerID: a.ID, Room: sess.ID},
			Event{Type: EventRoomJoined, PlayerID: b.ID, Room: sess.ID},
			Event{Type: EventSessionCreated, Session: sess.Clone()},
		)

		e.log.Info("session created",
			"session", sess.ID, "player_a", a.ID, "player_b", b.ID)
	}

	e.bus.publish(events...)
}

// RemovePlayer handles a full disconnect: the player vanishes from the
// registry, and a session it occupied is abandoned, or deleted outright
// when it was the last room member.
func (e *Engine) RemovePlayer(playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.players.get(playerID)
	if p == nil {
		return
	}

	room := p.Room
	events := []Event{
		{Type: EventRoomLeft, PlayerID: playerID, Room: room},
		{Type: EventPlayerRemoved, PlayerID: playerID},
	}
	e.players.remove(playerID)
	playersConnected.Dec()

	if room != domain.RoomLobby {
		if sess := e.sessions.get(room); sess != nil {
			e.timers.cancelSession(sess.ID)

			if len(e.players.listInRoom(sess.ID)) == 0 {
				e.sessions.remove(sess.ID)
				sessionsActive.Dec()
				events = append(events, Event{Type: EventSessionDeleted, SessionID: sess.ID})
				e.log.Info("session deleted", "session", sess.ID)
			} else {
				e.markAbandoned(sess, playerID)
				events = append(events, Event{Type: EventSessionUpdated, Session: sess.Clone()})
			}
		}
	}

	e.bus.publish(events...)
}

// SubmitMove records a hand for an active session. Unknown sessions, wrong
// states, non-participants and duplicate submissions are silent no-ops.
func (e *Engine) SubmitMove(sessionID, playerID string, move domain.Move) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.get(sessionID)
	if sess == nil || sess.Status != domain.StatusActive || !sess.IsParticipant(playerID) {
		return
	}
	if _, ok := domain.ParseMove(string(move)); !ok {
		return
	}

	switch playerID {
	case sess.PlayerA:
		if sess.MoveA != "" {
			return
		}
		sess.MoveA = move
	case sess.PlayerB:
		if sess.MoveB != "" {
			return
		}
		sess.MoveB = move
	}
	movesSubmitted.Inc()

	events := []Event{{Type: EventSessionUpdated, Session: sess.Clone()}}

	if sess.MoveA != "" && sess.MoveB != "" {
		sess.Status = domain.StatusResolving
		events = append(events, Event{Type: EventSessionUpdated, Session: sess.Clone()})

		id := sess.ID
		e.timers.schedule(id, phaseReveal, e.revealDelay, func() {
			e.revealResult(id)
		})
	}

	e.bus.publish(events...)
}

// RequestRematch flags the participant's intent to replay. When both flags
// are set the session resets straight to active: moves and winner cleared,
// round incremented, scores kept.
func (e *Engine) RequestRematch(sessionID, playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.get(sessionID)
	if sess == nil || sess.Status != domain.StatusFinished || !sess.IsParticipant(playerID) {
		return
	}

	switch playerID {
	case sess.PlayerA:
		if sess.RematchA {
			return
		}
		sess.RematchA = true
	case sess.PlayerB:
		if sess.RematchB {
			return
		}
		sess.RematchB = true
	}

	events := []Event{{Type: EventSessionUpdated, Session: sess.Clone()}}

	if sess.RematchA && sess.RematchB {
		sess.Status = domain.StatusActive
		sess.MoveA = ""
		sess.MoveB = ""
		sess.Winner = ""
		sess.RematchA = false
		sess.RematchB = false
		sess.Round++
		rematchesStarted.Inc()

		events = append(events, Event{Type: EventSessionUpdated, Session: sess.Clone()})
		e.log.Info("rematch started", "session", sess.ID, "round", sess.Round)
	}

	e.bus.publish(events...)
}

// LeaveSession abandons the session and returns the leaving participant to
// the lobby. The other participant keeps its room assignment; its client
// reacts to the abandoned snapshot.
func (e *Engine) LeaveSession(sessionID, playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.get(sessionID)
	if sess == nil || !sess.IsParticipant(playerID) {
		return
	}

	e.timers.cancelSession(sess.ID)
	e.markAbandoned(sess, playerID)

	events := []Event{{Type: EventSessionUpdated, Session: sess.Clone()}}

	if p := e.players.get(playerID); p != nil && p.Room == sess.ID {
		events = append(events, Event{Type: EventRoomLeft, PlayerID: playerID, Room: sess.ID})
		e.players.setRoom(playerID, domain.RoomLobby)
		events = append(events, Event{Type: EventRoomJoined, PlayerID: playerID, Room: domain.RoomLobby})
	}

	e.bus.publish(events...)
}

// GetPlayer returns a snapshot of the player, if registered.
func (e *Engine) GetPlayer(playerID string) (*domain.Player, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.players.get(playerID)
	if p == nil {
		return nil, false
	}
	return &domain.Player{ID: p.ID, Room: p.Room}, true
}

// GetSession returns a snapshot of the session, if tracked.
func (e *Engine) GetSession(sessionID string) (*domain.Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.get(sessionID)
	if sess == nil {
		return nil, false
	}
	return sess.Clone(), true
}

// ListSessions returns snapshots of every tracked session in creation order.
func (e *Engine) ListSessions() []*domain.Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	live := e.sessions.list()
	out := make([]*domain.Session, len(live))
	for i, sess := range live {
		out[i] = sess.Clone()
	}
	return out
}

// ListPlayers returns snapshots of every registered player in join order.
func (e *Engine) ListPlayers() []*domain.Player {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []*domain.Player
	for _, id := range e.players.order {
		p := e.players.get(id)
		out = append(out, &domain.Player{ID: p.ID, Room: p.Room})
	}
	return out
}

// createSession allocates a unique id, stores the session in matched state
// and arms the matched-to-active timer. Caller holds e.mu.
func (e *Engine) createSession(playerA, playerB string) *domain.Session {
	id := e.uniqueSessionID()
	sess := &domain.Session{
		ID:      id,
		PlayerA: playerA,
		PlayerB: playerB,
		Status:  domain.StatusMatched,
		Round:   1,
	}
	e.sessions.add(sess)
	sessionsCreated.Inc()
	sessionsActive.Inc()

	e.timers.schedule(id, phaseMatched, e.matchedDelay, func() {
		e.activateSession(id)
	})
	return sess
}

func (e *Engine) uniqueSessionID() string {
	for i := 0; i < idAttempts; i++ {
		id := sessionIDPrefix + e.newID()
		if !e.sessions.has(id) {
			return id
		}
	}
	panic(fmt.Sprintf("engine: id generator produced %d consecutive collisions", idAttempts))
}

// activateSession is the matched-delay callback. The session may have been
// abandoned or deleted since scheduling, so state is re-checked.
func (e *Engine) activateSession(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.get(sessionID)
	if sess == nil || sess.Status != domain.StatusMatched {
		return
	}

	sess.Status = domain.StatusActive
	e.bus.publish(Event{Type: EventSessionUpdated, Session: sess.Clone()})
}

// revealResult is the resolving-delay callback: map the round outcome to a
// winner id and bump exactly one score, none on a draw.
func (e *Engine) revealResult(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions.get(sessionID)
	if sess == nil || sess.Status != domain.StatusResolving {
		return
	}
	if sess.MoveA == "" || sess.MoveB == "" {
		return
	}

	switch Resolve(sess.MoveA, sess.MoveB) {
	case OutcomeA:
		sess.Winner = sess.PlayerA
		sess.ScoreA++
	case OutcomeB:
		sess.Winner = sess.PlayerB
		sess.ScoreB++
	case OutcomeDraw:
		sess.Winner = domain.WinnerDraw
	}
	sess.Status = domain.StatusFinished

	e.log.Info("round finished",
		"session", sess.ID, "round", sess.Round, "winner", sess.Winner)
	e.bus.publish(Event{Type: EventSessionUpdated, Session: sess.Clone()})
}

// markAbandoned flips the session to its terminal state. AbandonedBy is
// written once and never overwritten.
func (e *Engine) markAbandoned(sess *domain.Session, playerID string) {
	if sess.Status != domain.StatusAbandoned {
		sessionsAbandoned.Inc()
	}
	sess.Status = domain.StatusAbandoned
	if sess.AbandonedBy == "" {
		sess.AbandonedBy = playerID
	}
	e.log.Info("session abandoned", "session", sess.ID, "by", playerID)
}
