package claims

import (
	"context"

	"birthdayreminder/pkg/session"
)

type contextKey string

const (
	SessionContextKey contextKey = "session"
)

func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, s)
}

// FromContext returns the session attached by the auth middleware.
func FromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(SessionContextKey).(*session.Session)
	return s, ok && s != nil
}
