package handler

import (
	"net/http"

	"noteboard/internal/logger"
	"noteboard/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {

	// 1. Read session cookie (same pattern as the auth gate)
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// 2. Destroy session (best-effort)
		if err := h.auth.Logout(c.Request.Context(), cookie.Value); err != nil {
			logger.Warn("failed to destroy session", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// 3. Clear cookie
	session.ClearCookie(c.Writer, h.cookieOpts)

	// 4. Idempotent: logging out without a session is fine
	c.Redirect(http.StatusSeeOther, "/login")
}
