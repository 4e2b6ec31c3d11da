package ws

import (
	"net/http"
	"os"

	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// HandleWS upgrades a webview connection. Identity comes from the session
// token, the post context from the `post` query parameter; a missing post
// parameter falls back to the hub.
func HandleWS(svc *service.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		username, err := service.ParseJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		gameID := c.Query("post")
		if gameID == "" {
			hubID, err := svc.HubID(c.Request.Context())
			if err != nil || hubID == "" {
				c.JSON(http.StatusNotFound, gin.H{"error": "no post context"})
				return
			}
			gameID = hubID
		}

		allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error("ws upgrade failed", "error", err)
			return
		}

		client := NewClient(username, gameID, conn, svc)
		go client.Run()
	}
}
