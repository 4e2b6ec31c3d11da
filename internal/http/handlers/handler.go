package handlers

import (
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
	"github.com/GitBolt/shapefinder-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// HandlerConfig holds handler-level settings.
type HandlerConfig struct {
	HubTitle   string
	Moderators []string
}

type Handler struct {
	Store   kv.Store
	Service *service.GameService
	cfg     HandlerConfig
}

func NewHandler(store kv.Store, svc *service.GameService, cfg HandlerConfig) *Handler {
	return &Handler{Store: store, Service: svc, cfg: cfg}
}

// getUsername extracts the authenticated username from the gin context.
func getUsername(c *gin.Context) (string, bool) {
	username := c.GetString("username")
	return username, username != ""
}

func (h *Handler) isModerator(username string) bool {
	for _, m := range h.cfg.Moderators {
		if m == username {
			return true
		}
	}
	return false
}
