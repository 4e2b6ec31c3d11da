package handlers

import (
	"errors"
	"net/http"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/game"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateGameRequest carries the creator's hidden shape and optional canvas.
type CreateGameRequest struct {
	Target domain.TargetShape   `json:"target" binding:"required"`
	Canvas *domain.CanvasConfig `json:"canvas"`
}

// CreateGame provisions a new game post.
func (h *Handler) CreateGame(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	var canvas domain.CanvasConfig
	if req.Canvas != nil {
		canvas = *req.Canvas
	}

	g, err := h.Service.CreateGame(c.Request.Context(), username, req.Target, canvas)
	if errors.Is(err, game.ErrInvalidShape) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target shape"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       g.ID,
		"short_id": g.ShortID,
	})
}

// GetGame returns the public view of a game. Target coordinates are only
// included once the viewer is entitled to them (guessed, revealed, or own
// game) to keep the webview from leaking the answer.
func (h *Handler) GetGame(c *gin.Context) {
	username, _ := getUsername(c)
	gameID := c.Param("id")

	data, err := h.Service.InitialData(c.Request.Context(), gameID, username)
	if errors.Is(err, repository.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// ResolveCode maps a 4-digit join code to a game id.
func (h *Handler) ResolveCode(c *gin.Context) {
	code := c.Param("code")

	id, err := h.Service.Resolve(c.Request.Context(), code)
	if errors.Is(err, game.ErrInvalidShortCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code must be 4 digits"})
		return
	}
	if errors.Is(err, repository.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no game with that code"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GuessRequest is a click on the canvas plus the advisory elapsed time.
type GuessRequest struct {
	X            int `json:"x"`
	Y            int `json:"y"`
	SecondsTaken int `json:"secondsTaken"`
}

// Guess records one guess for the authenticated user.
func (h *Handler) Guess(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	out, err := h.Service.RecordGuess(c.Request.Context(), c.Param("id"), username, req.X, req.Y, req.SecondsTaken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record guess"})
		return
	}

	if !out.Recorded {
		c.JSON(http.StatusConflict, gin.H{
			"success":  false,
			"rejected": out.Rejected,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"isCorrect": out.IsCorrect,
		"target":    out.Target,
		"guesses":   out.Ledger,
	})
}

// Reveal closes the game and returns the full ledger. Creator only.
func (h *Handler) Reveal(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.Service.Reveal(c.Request.Context(), c.Param("id"), username)
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
	case errors.Is(err, game.ErrHubRecord):
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to reveal on the hub"})
	case errors.Is(err, game.ErrNotCreator):
		c.JSON(http.StatusForbidden, gin.H{"error": "only the creator can reveal"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reveal"})
	default:
		c.JSON(http.StatusOK, res)
	}
}

// Heatmap returns bucketed guess density for a revealed game.
func (h *Handler) Heatmap(c *gin.Context) {
	cells, err := h.Service.Heatmap(c.Request.Context(), c.Param("id"))
	if errors.Is(err, game.ErrNotRevealed) {
		c.JSON(http.StatusConflict, gin.H{"error": "game is not revealed yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build heatmap"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cells": cells, "cellSize": game.HeatmapCellSize})
}
