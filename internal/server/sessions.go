package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-navigator/internal/navigator"
)

// session pairs a navigator with its registry bookkeeping. The mutex serializes
// turns within one session; independent sessions never contend.
type session struct {
	mu        sync.Mutex
	id        string
	bankKey   string
	nav       *navigator.Navigator
	createdAt time.Time
}

// sessionRegistry is the in-memory session index.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*session)}
}

func (r *sessionRegistry) add(bankKey string, nav *navigator.Navigator) *session {
	s := &session{
		id:        uuid.New().String(),
		bankKey:   bankKey,
		nav:       nav,
		createdAt: time.Now(),
	}
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
	return s
}

func (r *sessionRegistry) get(id string) (*session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	return s, ok
}

func (r *sessionRegistry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}
