package http

import (
	"os"
	"strconv"
	"time"

	"github.com/GitBolt/shapefinder-sub000/internal/config"
	"github.com/GitBolt/shapefinder-sub000/internal/http/handlers"
	"github.com/GitBolt/shapefinder-sub000/internal/http/middleware"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
	"github.com/GitBolt/shapefinder-sub000/internal/service"
	"github.com/GitBolt/shapefinder-sub000/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the REST API, the health probes and the webview
// websocket endpoint.
func RegisterRoutes(r *gin.Engine, store kv.Store, svc *service.GameService, cfg *config.Config, version string) {
	h := handlers.NewHandler(store, svc, handlers.HandlerConfig{
		HubTitle:   cfg.HubTitle,
		Moderators: cfg.Moderators,
	})
	healthHandler := handlers.NewHealthHandler(store, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	guessRL := middleware.GuessRateLimit(cfg.GuessRateLimit, time.Duration(cfg.GuessRateWindow)*time.Second)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	{
		v1.POST("/auth", middleware.RedisRateLimit(authRateLimit, authRateWindow), h.Auth)

		// Hub post (moderator provisioning + lookup)
		v1.POST("/hub", middleware.JWT(), h.CreateHub)
		v1.GET("/hub", h.GetHub)

		// Games
		v1.POST("/games", middleware.JWT(), h.CreateGame)
		v1.GET("/games/resolve/:code", h.ResolveCode)
		v1.GET("/games/:id", middleware.JWT(), h.GetGame)
		v1.POST("/games/:id/guess", middleware.JWT(), guessRL, h.Guess)
		v1.POST("/games/:id/reveal", middleware.JWT(), h.Reveal)
		v1.GET("/games/:id/stats", h.GameStats)
		v1.GET("/games/:id/heatmap", h.Heatmap)

		// Global stats
		v1.GET("/stats", h.GlobalStats)
	}

	// WebSocket carrying the webview message protocol
	r.GET("/ws", ws.HandleWS(svc))
}
