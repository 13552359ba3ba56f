package handler

import (
	"errors"
	"net/http"
	"strings"

	"noteboard/internal/auth"
	"noteboard/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *Handler) Register(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("id"))
	password := c.PostForm("password")
	nickname := strings.TrimSpace(c.PostForm("nickname"))
	organization := strings.TrimSpace(c.PostForm("organization"))

	err := h.auth.Register(
		c.Request.Context(),
		id,
		password,
		nickname,
		organization,
	)

	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/login")

	case errors.Is(err, auth.ErrValidation):
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "Please fill in all required fields.",
		})

	case errors.Is(err, auth.ErrDuplicateID):
		c.HTML(http.StatusConflict, "register.html", gin.H{
			"Error": "That id is already taken.",
		})

	default:
		logger.Error("registration failed", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"Error": "Something went wrong. Please try again.",
		})
	}
}
