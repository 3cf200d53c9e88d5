package auth

import (
	"context"
	"errors"
	"time"
)

// Session binds the opaque cookie-borne identifier to the authenticated user.
// It lives only in the configured SessionStore, never in the database.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionStore is the server-side session state. Implementations must be safe
// for concurrent use; sessions are only written at login and logout.
type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

var ErrSessionNotFound = errors.New("session not found")

type ctxKey string

const sessionContextKey ctxKey = "session"

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*Session)
	return s, ok
}

func contextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}
