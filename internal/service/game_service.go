package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/game"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

// GameService is the single entry point for both the HTTP handlers and the
// webview protocol sessions. It wires the registry, guess engine, stats
// aggregator and reveal flow over one key-value store.
type GameService struct {
	games    *repository.GameRepository
	guesses  *repository.GuessRepository
	counters *repository.CounterRepository

	registry *game.Registry
	engine   *game.Engine
	stats    *game.Stats
	revealer *game.Revealer
}

func NewGameService(store kv.Store) *GameService {
	games := repository.NewGameRepository(store)
	guesses := repository.NewGuessRepository(store)
	counters := repository.NewCounterRepository(store)
	stats := game.NewStats(games, guesses, counters)

	return &GameService{
		games:    games,
		guesses:  guesses,
		counters: counters,
		registry: game.NewRegistry(games, counters),
		engine:   game.NewEngine(games, guesses, counters),
		stats:    stats,
		revealer: game.NewRevealer(games, guesses, stats),
	}
}

// CreateHub provisions (or returns) the singleton hub post.
func (s *GameService) CreateHub(ctx context.Context, username string) (*domain.GameRecord, error) {
	return s.registry.CreateHub(ctx, username)
}

// HubID returns the hub post id, "" when not provisioned yet.
func (s *GameService) HubID(ctx context.Context) (string, error) {
	return s.games.GetHub(ctx)
}

// CreateGame makes a new game post for the creator's hidden shape.
func (s *GameService) CreateGame(ctx context.Context, username string, target domain.TargetShape, canvas domain.CanvasConfig) (*domain.GameRecord, error) {
	g, err := s.registry.Create(ctx, username, target, canvas)
	if err != nil {
		return nil, err
	}
	GamesCreated.Inc()
	return g, nil
}

// Resolve maps a 4-digit join code to a game id.
func (s *GameService) Resolve(ctx context.Context, code string) (string, error) {
	return s.registry.Resolve(ctx, code)
}

// Game loads a single game record.
func (s *GameService) Game(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	return s.games.Get(ctx, gameID)
}

// RecordGuess runs the guess pipeline and tracks the outcome metrics.
func (s *GameService) RecordGuess(ctx context.Context, gameID, username string, x, y, secondsTaken int) (*game.GuessOutcome, error) {
	out, err := s.engine.RecordGuess(ctx, gameID, username, x, y, secondsTaken)
	if err != nil {
		return nil, err
	}
	if out.Recorded {
		GuessesRecorded.WithLabelValues(strconv.FormatBool(out.IsCorrect)).Inc()
	} else {
		GuessesRejected.WithLabelValues(out.Rejected).Inc()
	}
	return out, nil
}

// Reveal closes a game and returns the full ledger and stats.
func (s *GameService) Reveal(ctx context.Context, gameID, username string) (*game.RevealResult, error) {
	res, err := s.revealer.Reveal(ctx, gameID, username)
	if err != nil {
		return nil, err
	}
	GamesRevealed.Inc()
	return res, nil
}

// GameStats returns per-game metrics (zero-valued when storage misbehaves).
func (s *GameService) GameStats(ctx context.Context, gameID string) domain.GameStats {
	return s.stats.Game(ctx, gameID)
}

// GlobalStats returns the site-wide metrics.
func (s *GameService) GlobalStats(ctx context.Context) domain.GlobalStats {
	return s.stats.Global(ctx)
}

// Heatmap returns bucketed guess density for a revealed game.
func (s *GameService) Heatmap(ctx context.Context, gameID string) ([]domain.HeatmapCell, error) {
	return game.Heatmap(ctx, s.games, s.guesses, gameID)
}

// InitialData is everything the webview needs to render its first frame.
// Target coordinates are withheld until the viewer has guessed, the game is
// revealed, or the viewer created the game.
type InitialData struct {
	Username   string               `json:"username"`
	GameID     string               `json:"gameId"`
	ShortID    string               `json:"shortId,omitempty"`
	IsHub      bool                 `json:"isHub"`
	Revealed   bool                 `json:"revealed"`
	GuessCount int                  `json:"guessCount"`
	Canvas     *domain.CanvasConfig `json:"canvas"`
	UserGuess  *domain.GuessRecord  `json:"userGuess"`
	Stats      *domain.GameStats    `json:"stats"`
	Global     *domain.GlobalStats  `json:"globalStats"`
	Target     *domain.TargetShape  `json:"target"`
}

// InitialData assembles the first-frame payload. The canvas and the
// viewer's own guess live under unrelated keys, so they are fetched
// concurrently; both must land before the response is built.
func (s *GameService) InitialData(ctx context.Context, gameID, username string) (*InitialData, error) {
	g, err := s.games.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}

	data := &InitialData{
		Username: username,
		GameID:   g.ID,
		ShortID:  g.ShortID,
		IsHub:    g.IsHub,
		Revealed: g.Revealed,
	}

	if g.IsHub {
		global := s.stats.Global(ctx)
		data.Global = &global
		return data, nil
	}

	var (
		wg        sync.WaitGroup
		canvas    *domain.CanvasConfig
		canvasErr error
		userGuess *domain.GuessRecord
		guessErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		canvas, canvasErr = s.stats.Canvas(ctx, gameID)
	}()
	go func() {
		defer wg.Done()
		userGuess, guessErr = s.stats.UserGuess(ctx, gameID, username)
	}()
	wg.Wait()

	if canvasErr != nil {
		return nil, canvasErr
	}
	if guessErr != nil {
		// the viewer can still play without their cached guess record
		logger.Error("user guess lookup failed", "game", gameID, "user", username, "error", guessErr)
	}

	data.Canvas = canvas
	data.UserGuess = userGuess

	count, err := s.guesses.GetGuessCount(ctx, gameID)
	if err != nil {
		logger.Error("guess count lookup failed", "game", gameID, "error", err)
	}
	data.GuessCount = count

	if g.Revealed || userGuess != nil {
		stats := s.stats.Game(ctx, gameID)
		data.Stats = &stats
	}

	if g.Revealed || userGuess != nil || g.CreatedBy == username {
		target := g.Target
		data.Target = &target
	}

	return data, nil
}
