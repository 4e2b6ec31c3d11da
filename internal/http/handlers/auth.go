package handlers

import (
	"net/http"
	"regexp"

	"github.com/GitBolt/shapefinder-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// usernamePattern mirrors the hosting platform's account name rules.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

type AuthRequest struct {
	Username string `json:"username" binding:"required"`
}

// Auth exchanges a platform identity for a session token. The hosting
// platform vouches for usernames upstream of this service; here we only
// enforce the shape of the name.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if !usernamePattern.MatchString(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username"})
		return
	}

	token, err := service.GenerateJWT(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": req.Username,
	})
}
