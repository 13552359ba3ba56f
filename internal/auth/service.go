package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"noteboard/internal/auth/credentials"
	"noteboard/internal/session"
	"noteboard/internal/user"
)

var (
	// ErrValidation means a required form field was missing or empty.
	ErrValidation = errors.New("missing required field")

	// ErrDuplicateID means registration was attempted with an id that
	// is already taken. Aliased so callers can match it regardless of
	// whether the pre-check or the storage layer caught the conflict.
	ErrDuplicateID = user.ErrDuplicateID

	// ErrInvalidCredentials covers both an unknown id and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	directory  user.Directory
	sessions   session.Store
	sessionTTL time.Duration
}

func NewService(
	directory user.Directory,
	sessions session.Store,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		directory:  directory,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *Service) Register(
	ctx context.Context,
	id string,
	password string,
	nickname string,
	organization string,
) error {

	// 1. Required fields
	if id == "" || password == "" || nickname == "" {
		return fmt.Errorf("%w: id, password and nickname are required", ErrValidation)
	}

	// 2. Duplicate pre-check. The storage layer's unique key is the
	// real guarantee; this check only gives a friendlier error for
	// the common case.
	exists, err := s.directory.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check id: %w", err)
	}
	if exists {
		return ErrDuplicateID
	}

	// 3. Hash password
	hash, version, err := credentials.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// 4. Persist. A single insert, so no partial user is ever visible.
	u := user.User{
		ID:           id,
		PasswordHash: hash,
		HashVersion:  version,
		Nickname:     nickname,
		Organization: organization,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.directory.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (s *Service) Login(
	ctx context.Context,
	id string,
	password string,
) (*session.Session, error) {

	if id == "" || password == "" {
		return nil, fmt.Errorf("%w: id and password are required", ErrValidation)
	}

	u, err := s.directory.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		// hide whether the id exists or not
		return nil, ErrInvalidCredentials
	}

	if err := credentials.VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.StartSession(ctx, u)
}

// StartSession mints a session id and stores the identity projection
// under it. The caller is responsible for issuing the cookie.
func (s *Service) StartSession(
	ctx context.Context,
	u *user.User,
) (*session.Session, error) {

	sessionID, err := session.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := session.Session{
		SessionID: sessionID,
		Identity: session.Identity{
			UserID:       u.ID,
			Nickname:     u.Nickname,
			Organization: u.Organization,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &sess, nil
}

// Logout destroys the session. Idempotent: an unknown or empty
// session id is not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
