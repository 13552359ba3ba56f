package app

import (
	"context"
	"net/http"

	"noteboard/internal/auth"
	"noteboard/internal/config"
	"noteboard/internal/middleware"
	"noteboard/internal/post"
	"noteboard/internal/session"
	"noteboard/internal/user"
	"noteboard/internal/web/handler"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func(ctx context.Context) error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	directory := user.NewMongoDirectory(infra.Mongo.Database())

	postRepo := post.NewMongoRepository(infra.Mongo.Database())
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		return nil, nil, err
	}

	sessionStore := infra.sessionStore()

	authService := auth.NewService(directory, sessionStore, cfg.SessionTTL)
	postService := post.NewService(postRepo)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	webHandler := handler.NewHandler(
		authService,
		postService,
		cookieOpts,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore, "/login")

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.LoadHTMLGlob(cfg.TemplatesGlob)
	router.Static("/static", cfg.StaticDir)

	// ----------------------------
	// Public Routes
	// ----------------------------

	webHandler.RegisterRoutes(router)

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(middleware.GinRequireAuth(authMiddleware))

	webHandler.RegisterProtected(protected)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.close, nil
}
