package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/moamen79/qurandle-backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// App owns the process-wide state: config, the signing secret and the router.
type App struct {
	cfg    config.Config
	router *gin.Engine
}

// New builds the application. The signing secret is initialized exactly once
// here; failure to obtain one is the only non-config fatal startup path.
func New(cfg config.Config) (*App, error) {
	secret, err := signingSecret(cfg.Auth.Secret)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg}
	a.router = newRouter(cfg, secret)
	return a, nil
}

// Router returns the HTTP handler.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases resources on shutdown. All state is in-process today, so
// there is nothing to flush; a durable store would hook in here.
func (a *App) Close(ctx context.Context) error {
	_ = ctx
	return nil
}

// signingSecret returns the configured secret, or a random per-process one
// when none is configured. Tokens minted with a generated secret do not
// survive a restart.
func signingSecret(configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate signing secret: %w", err)
	}
	return b, nil
}

func newRouter(cfg config.Config, secret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(gin.Logger())

	// One trusted browser origin, credentials allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	Setup(r, cfg, secret)
	return r
}
