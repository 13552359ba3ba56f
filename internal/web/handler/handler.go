package handler

import (
	"net/http"

	"noteboard/internal/auth"
	"noteboard/internal/post"
	"noteboard/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth       *auth.Service
	posts      *post.Service
	cookieOpts session.CookieOptions
}

func NewHandler(
	authService *auth.Service,
	postService *post.Service,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		auth:       authService,
		posts:      postService,
		cookieOpts: cookieOpts,
	}
}

// RegisterRoutes wires the public routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterProtected wires the routes behind the auth gate.
func (h *Handler) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/", h.Board)
	g.POST("/posts", h.CreatePost)
}
