package middleware

import (
	"context"
	"net/http"
	"time"

	"noteboard/internal/session"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (session.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(session.Identity)
	return ident, ok
}

type AuthMiddleware struct {
	Store     session.Store
	LoginPath string
}

func NewAuthMiddleware(store session.Store, loginPath string) *AuthMiddleware {
	return &AuthMiddleware{Store: store, LoginPath: loginPath}
}

// RequireAuth guards protected pages. Unauthenticated callers are
// redirected to the login page instead of reaching the handler.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, a.LoginPath, http.StatusFound)
			return
		}

		sessionID := cookie.Value

		// 2. Load session
		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			http.Redirect(w, r, a.LoginPath, http.StatusFound)
			return
		}

		// 3. Enforce session expiry
		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), sessionID)
			http.Redirect(w, r, a.LoginPath, http.StatusFound)
			return
		}

		// 4. Attach identity to context
		ctx := context.WithValue(r.Context(), identityKey, sess.Identity)

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
