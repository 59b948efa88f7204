package app

import (
	"net/http"

	"github.com/moamen79/qurandle-backend/internal/auth"
	"github.com/moamen79/qurandle-backend/internal/config"
	dom "github.com/moamen79/qurandle-backend/internal/domain"
	"github.com/moamen79/qurandle-backend/internal/handlers"
	"github.com/moamen79/qurandle-backend/internal/repo"
	"github.com/moamen79/qurandle-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, secret []byte) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	tokens := auth.NewTokenService(secret, cfg.Auth.TokenTTL.Duration())
	userRepo := repo.NewMemoryUserRepo()
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(userSvc, tokens)

	boardRepo := repo.NewMemoryLeaderboardRepo(dom.LevelEasy, dom.LevelMedium, dom.LevelHard)
	boardSvc := service.NewLeaderboardService(boardRepo)
	boardHandler := handlers.NewLeaderboardHandler(boardSvc)

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/leaderboard", boardHandler.Get)

	protected := r.Group("", auth.RequireAuth(tokens))
	protected.POST("/submit-score", boardHandler.Submit)
	protected.POST("/remove-score", boardHandler.Remove)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Qurandle backend",
			"status":  "running",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
