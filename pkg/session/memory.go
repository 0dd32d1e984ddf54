package session

import (
	"errors"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{sessions: make(map[string]Session)}
}

func (r *MemoryRepo) Create(s Session) error {
	if s.Token == "" {
		return errors.New("session: missing token")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.Token]; ok {
		return errors.New("session: token already in use")
	}
	r.sessions[s.Token] = s
	return nil
}

// Get returns a copy of the stored session. Expiry is not checked here.
func (r *MemoryRepo) Get(token string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRepo) Touch(token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return ErrNotFound
	}
	s.ExpiresAt = expiresAt
	r.sessions[token] = s
	return nil
}

func (r *MemoryRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

// Prune drops every session expired at now and reports how many went.
func (r *MemoryRepo) Prune(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for token, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, token)
			n++
		}
	}
	return n
}

func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
