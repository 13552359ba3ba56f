package handler

import (
	"errors"
	"net/http"
	"strings"

	"noteboard/internal/auth"
	"noteboard/internal/logger"
	"noteboard/internal/session"

	"github.com/gin-gonic/gin"
)

// invalidCredentialsMessage is shown for an unknown id and for a
// wrong password alike, so the form never reveals which ids exist.
const invalidCredentialsMessage = "Wrong id or password."

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("id"))
	password := c.PostForm("password")

	sess, err := h.auth.Login(c.Request.Context(), id, password)

	switch {
	case err == nil:
		session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, h.cookieOpts)
		c.Redirect(http.StatusSeeOther, "/")

	case errors.Is(err, auth.ErrValidation):
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Enter both id and password.",
		})

	case errors.Is(err, auth.ErrInvalidCredentials):
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": invalidCredentialsMessage,
		})

	default:
		logger.Error("login failed", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong. Please try again.",
		})
	}
}
