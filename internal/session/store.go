package session

import (
	"context"
	"time"
)

// Identity is the minimal projection of a user record that is safe to
// keep in a session. It never carries the password hash.
type Identity struct {
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	Organization string `json:"organization"`
}

// Session binds an opaque session ID to an authenticated identity.
type Session struct {
	SessionID string    `json:"session_id"` // unique session identifier
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"` // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Get returns (nil, nil) when the session is absent or expired;
// Delete of an absent session is not an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
