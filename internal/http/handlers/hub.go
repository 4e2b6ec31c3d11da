package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateHub provisions the hub post. Moderator-only: the hub is the pinned
// entry point every player lands on.
func (h *Handler) CreateHub(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if !h.isModerator(username) {
		c.JSON(http.StatusForbidden, gin.H{"error": "moderators only"})
		return
	}

	hub, err := h.Service.CreateHub(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create hub"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     hub.ID,
		"title":  h.cfg.HubTitle,
		"pinned": true,
	})
}

// GetHub returns the hub post id so clients can navigate to it.
func (h *Handler) GetHub(c *gin.Context) {
	id, err := h.Service.HubID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load hub"})
		return
	}
	if id == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "hub not provisioned"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "title": h.cfg.HubTitle})
}
