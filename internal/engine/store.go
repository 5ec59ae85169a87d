package engine

import "rps_arena/internal/domain"

// sessionStore tracks active sessions by id, preserving creation order for
// stable listings.
type sessionStore struct {
	sessions map[string]*domain.Session
	order    []string
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *sessionStore) has(id string) bool {
	_, ok := s.sessions[id]
	return ok
}

func (s *sessionStore) get(id string) *domain.Session {
	return s.sessions[id]
}

func (s *sessionStore) add(sess *domain.Session) {
	s.sessions[sess.ID] = sess
	s.order = append(s.order, sess.ID)
}

func (s *sessionStore) remove(id string) {
	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *sessionStore) list() []*domain.Session {
	out := make([]*domain.Session, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.sessions[id])
	}
	return out
}
