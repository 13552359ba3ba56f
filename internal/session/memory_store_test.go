package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/session"
)

func newSession(t *testing.T, ttl time.Duration) session.Session {
	t.Helper()

	id, err := session.GenerateID()
	require.NoError(t, err)

	now := time.Now()
	return session.Session{
		SessionID: id,
		Identity: session.Identity{
			UserID:       "alice",
			Nickname:     "Alice",
			Organization: "ACME",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryStore_CreateGet(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := newSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.Identity, got.Identity)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := session.NewMemoryStore()

	got, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_Expired(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := newSession(t, 10*time.Millisecond)
	require.NoError(t, store.Create(ctx, sess))

	time.Sleep(20 * time.Millisecond)

	got, err := store.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := newSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	require.NoError(t, store.Delete(ctx, sess.SessionID))

	got, err := store.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an already-absent session is not an error.
	require.NoError(t, store.Delete(ctx, sess.SessionID))
}

func TestMemoryStore_RejectsInvalid(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	missing := newSession(t, time.Hour)
	missing.Identity.UserID = ""
	assert.Error(t, store.Create(ctx, missing))

	expired := newSession(t, -time.Hour)
	assert.Error(t, store.Create(ctx, expired))
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := session.GenerateID()
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
