package session

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	Token     string
	Username  string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Repository holds live sessions. Implementations must be safe for
// concurrent use and are never expected to survive a restart.
type Repository interface {
	Create(s Session) error
	Get(token string) (*Session, error)
	Touch(token string, expiresAt time.Time) error
	Delete(token string) error
	Prune(now time.Time) int
}
