package handler

import (
	"errors"
	"net/http"

	"noteboard/internal/logger"
	"noteboard/internal/middleware"
	"noteboard/internal/post"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Board(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		// The gate always runs first; reaching here without an
		// identity is a wiring bug, not a user error.
		c.Redirect(http.StatusFound, "/login")
		return
	}

	posts, err := h.posts.Recent(c.Request.Context())
	if err != nil {
		logger.Error("failed to list posts", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"CurrentUser": ident,
			"Error":       "Could not load the board. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"CurrentUser": ident,
		"Posts":       posts,
	})
}

func (h *Handler) CreatePost(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	content := c.PostForm("content")

	err := h.posts.Create(c.Request.Context(), ident, content)

	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")

	case errors.Is(err, post.ErrInvalidContent):
		posts, listErr := h.posts.Recent(c.Request.Context())
		if listErr != nil {
			posts = nil
		}
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"CurrentUser": ident,
			"Posts":       posts,
			"Error":       "Posts must be between 1 and 500 characters.",
		})

	default:
		logger.Error("failed to create post", map[string]any{
			"error": err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"CurrentUser": ident,
			"Error":       "Something went wrong. Please try again.",
		})
	}
}
