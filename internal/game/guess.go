package game

import (
	"context"
	"errors"
	"time"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/logger"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

// Rejection reasons carried on the wire when a guess is not recorded.
const (
	RejectAlreadyGuessed = "already-guessed"
	RejectInvalidState   = "invalid-state"
)

var ErrGameNotFound = repository.ErrGameNotFound

// GuessOutcome is the single result shape for every guess path. Rejected is
// empty when the guess was recorded; Target and Ledger are populated on
// acceptance so the caller can render the personal result without a second
// round trip.
type GuessOutcome struct {
	Recorded  bool
	Rejected  string
	IsCorrect bool
	Target    *domain.TargetShape
	Ledger    []domain.GuessRecord
}

// Engine accepts guesses: enforces one guess per user, computes correctness
// once, and updates the ledger and counters.
type Engine struct {
	games    *repository.GameRepository
	guesses  *repository.GuessRepository
	counters *repository.CounterRepository

	now func() time.Time
}

func NewEngine(games *repository.GameRepository, guesses *repository.GuessRepository, counters *repository.CounterRepository) *Engine {
	return &Engine{
		games:    games,
		guesses:  guesses,
		counters: counters,
		now:      time.Now,
	}
}

// RecordGuess validates and persists one guess. State checks reject without
// mutating anything; after the per-user claim succeeds, the ledger append
// and counter increments are applied as a best-effort unit (the store has
// no multi-key transactions).
func (e *Engine) RecordGuess(ctx context.Context, gameID, username string, x, y, secondsTaken int) (*GuessOutcome, error) {
	g, err := e.games.Get(ctx, gameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return &GuessOutcome{Rejected: RejectInvalidState}, nil
	}
	if err != nil {
		return nil, err
	}

	if g.IsHub || g.Revealed {
		return &GuessOutcome{Rejected: RejectInvalidState}, nil
	}

	isCorrect := domain.IsHit(x, y, g.Target)

	guess := domain.GuessRecord{
		Username:     username,
		X:            x,
		Y:            y,
		Timestamp:    e.now().UnixMilli(),
		SecondsTaken: secondsTaken,
		IsCorrect:    isCorrect,
	}

	// The conditional write is the uniqueness gate. Two near-simultaneous
	// guesses by the same user resolve here: exactly one claims the key.
	claimed, err := e.guesses.ClaimUserGuess(ctx, gameID, guess)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return &GuessOutcome{Rejected: RejectAlreadyGuessed}, nil
	}

	ledger, err := e.guesses.AppendGuess(ctx, gameID, guess)
	if err != nil {
		// the user record is already durable; surface the error but keep
		// the accepted verdict for the caller
		logger.Error("ledger append failed", "game", gameID, "user", username, "error", err)
		ledger = []domain.GuessRecord{guess}
	}

	if _, err := e.guesses.IncrGuessCount(ctx, gameID); err != nil {
		logger.Error("guess count increment failed", "game", gameID, "error", err)
	}
	if _, err := e.counters.IncrGuesses(ctx); err != nil {
		logger.Error("total_guesses increment failed", "error", err)
	}
	if isCorrect {
		if _, err := e.counters.IncrCorrect(ctx); err != nil {
			logger.Error("total_correct_guesses increment failed", "error", err)
		}
	}

	target := g.Target
	return &GuessOutcome{
		Recorded:  true,
		IsCorrect: isCorrect,
		Target:    &target,
		Ledger:    ledger,
	}, nil
}
