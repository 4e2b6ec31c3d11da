package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameStats returns {totalGuesses, correctGuesses, successRate} for a game.
// Storage trouble shows up here as zeros, never as a 5xx: derived stats are
// decoration, not gameplay.
func (h *Handler) GameStats(c *gin.Context) {
	stats := h.Service.GameStats(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, stats)
}

// GlobalStats returns the site-wide counters.
func (h *Handler) GlobalStats(c *gin.Context) {
	stats := h.Service.GlobalStats(c.Request.Context())
	c.JSON(http.StatusOK, stats)
}
