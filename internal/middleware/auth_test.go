package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/middleware"
	"noteboard/internal/session"
)

func gateWithSession(t *testing.T, ttl time.Duration) (*middleware.AuthMiddleware, session.Session) {
	t.Helper()

	store := session.NewMemoryStore()

	id, err := session.GenerateID()
	require.NoError(t, err)

	now := time.Now()
	sess := session.Session{
		SessionID: id,
		Identity:  session.Identity{UserID: "alice", Nickname: "Alice"},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	require.NoError(t, store.Create(context.Background(), sess))

	return middleware.NewAuthMiddleware(store, "/login"), sess
}

func protectedProbe(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		ident, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			http.Error(w, "no identity", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(ident.Nickname))
	})
}

func TestRequireAuth_NoCookie(t *testing.T) {
	gate, _ := gateWithSession(t, time.Hour)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	gate.RequireAuth(protectedProbe(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuth_UnknownSession(t *testing.T) {
	gate, _ := gateWithSession(t, time.Hour)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "bogus"})
	rec := httptest.NewRecorder()

	gate.RequireAuth(protectedProbe(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireAuth_ValidSession(t *testing.T) {
	gate, sess := gateWithSession(t, time.Hour)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.SessionID})
	rec := httptest.NewRecorder()

	gate.RequireAuth(protectedProbe(&called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", rec.Body.String())
}

func TestRequireAuth_ExpiredSession(t *testing.T) {
	gate, sess := gateWithSession(t, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.SessionID})
	rec := httptest.NewRecorder()

	gate.RequireAuth(protectedProbe(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
