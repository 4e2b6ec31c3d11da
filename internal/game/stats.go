package game

import (
	"context"

	"github.com/GitBolt/shapefinder-sub000/internal/cache"
	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

// Stats derives per-game and global metrics from the authoritative counters
// and ledgers, memoized behind short TTLs. The caches only accelerate
// reads; every number still originates from the store.
type Stats struct {
	games    *repository.GameRepository
	guesses  *repository.GuessRepository
	counters *repository.CounterRepository

	gameStats   *cache.Cache[domain.GameStats]
	globalStats *cache.Cache[domain.GlobalStats]
	userGuess   *cache.Cache[*domain.GuessRecord]
	canvas      *cache.Cache[*domain.CanvasConfig]
}

func NewStats(games *repository.GameRepository, guesses *repository.GuessRepository, counters *repository.CounterRepository) *Stats {
	return &Stats{
		games:       games,
		guesses:     guesses,
		counters:    counters,
		gameStats:   cache.New[domain.GameStats](cache.GameStatsTTL),
		globalStats: cache.New[domain.GlobalStats](cache.GlobalStatsTTL),
		userGuess:   cache.New[*domain.GuessRecord](cache.UserGuessTTL),
		canvas:      cache.New[*domain.CanvasConfig](cache.CanvasTTL),
	}
}

// Game returns {totalGuesses, correctGuesses, successRate} for one game.
// Storage failures degrade to zero stats rather than propagating; derived
// metrics are never worth failing a render for.
func (s *Stats) Game(ctx context.Context, gameID string) domain.GameStats {
	stats, err := s.gameStats.GetOrLoad(ctx, gameID, func(ctx context.Context) (domain.GameStats, error) {
		total, err := s.guesses.GetGuessCount(ctx, gameID)
		if err != nil {
			return domain.GameStats{}, err
		}

		ledger, err := s.guesses.GetGuesses(ctx, gameID)
		if err != nil {
			return domain.GameStats{}, err
		}

		correct := 0
		for _, g := range ledger {
			if g.IsCorrect {
				correct++
			}
		}

		return domain.GameStats{
			TotalGuesses:   total,
			CorrectGuesses: correct,
			SuccessRate:    domain.SuccessRate(correct, total),
		}, nil
	})
	if err != nil {
		logger.Error("game stats unavailable, serving zeros", "game", gameID, "error", err)
		return domain.GameStats{}
	}
	return stats
}

// Global returns the site-wide stats from the three running counters.
func (s *Stats) Global(ctx context.Context) domain.GlobalStats {
	stats, err := s.globalStats.GetOrLoad(ctx, "global", func(ctx context.Context) (domain.GlobalStats, error) {
		games, err := s.counters.Games(ctx)
		if err != nil {
			return domain.GlobalStats{}, err
		}
		guesses, err := s.counters.Guesses(ctx)
		if err != nil {
			return domain.GlobalStats{}, err
		}
		correct, err := s.counters.Correct(ctx)
		if err != nil {
			return domain.GlobalStats{}, err
		}

		return domain.GlobalStats{
			TotalGames:   games,
			TotalGuesses: guesses,
			SuccessRate:  domain.SuccessRate(correct, guesses),
		}, nil
	})
	if err != nil {
		logger.Error("global stats unavailable, serving zeros", "error", err)
		return domain.GlobalStats{}
	}
	return stats
}

// UserGuess returns the user's own guess for a game, cached for a few
// minutes (a recorded guess is immutable, so staleness only delays the
// "you already guessed" fast path).
func (s *Stats) UserGuess(ctx context.Context, gameID, username string) (*domain.GuessRecord, error) {
	return s.userGuess.GetOrLoad(ctx, gameID+"_"+username, func(ctx context.Context) (*domain.GuessRecord, error) {
		return s.guesses.GetUserGuess(ctx, gameID, username)
	})
}

// Canvas returns the canvas configuration, cached long since it never
// changes after creation.
func (s *Stats) Canvas(ctx context.Context, gameID string) (*domain.CanvasConfig, error) {
	return s.canvas.GetOrLoad(ctx, gameID, func(ctx context.Context) (*domain.CanvasConfig, error) {
		return s.games.GetCanvas(ctx, gameID)
	})
}
