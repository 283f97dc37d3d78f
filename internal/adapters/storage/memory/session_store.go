package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/PabloGalante/safehaven/internal/app/session"
	"github.com/PabloGalante/safehaven/internal/domain"
)

// SessionStore keeps session states in process memory. Idle sessions expire
// after the configured TTL; every Get extends the lifetime.
type SessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionStore{
		cache: cache.New(ttl, ttl/4),
		ttl:   ttl,
	}
}

func (s *SessionStore) Save(st *session.State) {
	s.cache.Set(string(st.ID), st, s.ttl)
}

func (s *SessionStore) Get(id domain.SessionID) (*session.State, error) {
	x, found := s.cache.Get(string(id))
	if !found {
		return nil, domain.ErrSessionNotFound
	}
	st := x.(*session.State)
	s.cache.Set(string(id), st, s.ttl)
	return st, nil
}

func (s *SessionStore) Delete(id domain.SessionID) {
	s.cache.Delete(string(id))
}

func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}
