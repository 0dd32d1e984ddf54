package user

import (
	"errors"
	"fmt"
	"time"

	"birthdayreminder/pkg/generator"
	"birthdayreminder/pkg/session"
)

const DefaultSessionTTL = 24 * time.Hour

var ErrUnauthenticated = errors.New("unauthenticated")

type ServiceInterface interface {
	Login(username, password string) (*session.Session, error)
	Authenticate(token string) (*session.Session, error)
	Logout(token string) error
}

// Service is the session gate: it turns a verified login into a session and
// resolves session tokens back to identities.
type Service struct {
	Verifier CredentialVerifier
	Session  session.Repository
	TTL      time.Duration
	Now      func() time.Time
}

func NewService(verifier CredentialVerifier, sessions session.Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		Verifier: verifier,
		Session:  sessions,
		TTL:      ttl,
		Now:      time.Now,
	}
}

func (s *Service) Login(username, password string) (*session.Session, error) {
	u, err := s.Verifier.Verify(username, password)
	if err != nil {
		return nil, err
	}

	token, err := generator.GenerateToken(generator.TokenSize)
	if err != nil {
		return nil, fmt.Errorf("SessionID gen error: %w", err)
	}

	now := s.Now()
	sess := session.Session{
		Token:     token,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := s.Session.Create(sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &sess, nil
}

// Authenticate resolves a token to its session and slides the expiry forward.
// Expired sessions are removed on sight.
func (s *Service) Authenticate(token string) (*session.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	sess, err := s.Session.Get(token)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if sess.Expired(now) {
		_ = s.Session.Delete(token)
		return nil, ErrUnauthenticated
	}

	sess.ExpiresAt = now.Add(s.TTL)
	if err := s.Session.Touch(token, sess.ExpiresAt); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return sess, nil
}

func (s *Service) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.Session.Delete(token)
}
