// pkg/memcache/sessions.go
package memcache

import (
	"sync"
	"time"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
)

// SessionStore keeps planning sessions in memory for the lifetime of the
// process. Sessions are never persisted; an idle session is dropped after its
// TTL so abandoned visits do not accumulate.
type SessionStore interface {
	Put(session *plan_models.Session)
	Get(id string) (*plan_models.Session, bool)

	// Update runs fn on the session under the store lock so every mutation of
	// session state is serialized. Returns false if the session is unknown.
	Update(id string, fn func(*plan_models.Session)) bool

	Delete(id string)
}

type sessionEntry struct {
	session  *plan_models.Session
	lastSeen time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]*sessionEntry
	ttl  time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Sessions{
		data: make(map[string]*sessionEntry),
		ttl:  ttl,
	}
}

func (s *Sessions) Put(session *plan_models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = &sessionEntry{session: session, lastSeen: time.Now()}
}

func (s *Sessions) Get(id string) (*plan_models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Since(e.lastSeen) > s.ttl {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.session, true
}

func (s *Sessions) Update(id string, fn func(*plan_models.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return false
	}
	if time.Since(e.lastSeen) > s.ttl {
		delete(s.data, id)
		return false
	}
	e.lastSeen = time.Now()
	fn(e.session)
	return true
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
