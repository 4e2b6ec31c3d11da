package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
)

// GuessRepository persists the per-game guess ledger, the per-user guess
// records that enforce one-guess-per-user, and the running counters.
type GuessRepository struct {
	store kv.Store
}

func NewGuessRepository(store kv.Store) *GuessRepository {
	return &GuessRepository{store: store}
}

// ClaimUserGuess writes the user's guess record only if none exists yet.
// The conditional write is what closes the double-guess race: whichever
// concurrent guess claims the key first is the one that counts.
func (r *GuessRepository) ClaimUserGuess(ctx context.Context, gameID string, g domain.GuessRecord) (bool, error) {
	raw, err := json.Marshal(g)
	if err != nil {
		return false, err
	}
	return r.store.SetNX(ctx, keyUserGuess(gameID, g.Username), string(raw))
}

// GetUserGuess returns the user's guess for a game, or nil if they have
// not guessed yet.
func (r *GuessRepository) GetUserGuess(ctx context.Context, gameID, username string) (*domain.GuessRecord, error) {
	raw, err := r.store.Get(ctx, keyUserGuess(gameID, username))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var g domain.GuessRecord
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetGuesses returns the full ledger for a game in arrival order.
func (r *GuessRepository) GetGuesses(ctx context.Context, gameID string) ([]domain.GuessRecord, error) {
	raw, err := r.store.Get(ctx, keyAllGuesses(gameID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var guesses []domain.GuessRecord
	if err := json.Unmarshal([]byte(raw), &guesses); err != nil {
		return nil, err
	}
	return guesses, nil
}

// AppendGuess appends to the shared ledger and returns the updated ledger.
// Read-modify-write; concurrent appends from different users can race.
// The per-user record is the source of truth, the ledger is best-effort.
func (r *GuessRepository) AppendGuess(ctx context.Context, gameID string, g domain.GuessRecord) ([]domain.GuessRecord, error) {
	guesses, err := r.GetGuesses(ctx, gameID)
	if err != nil {
		return nil, err
	}
	guesses = append(guesses, g)

	raw, err := json.Marshal(guesses)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(ctx, keyAllGuesses(gameID), string(raw)); err != nil {
		return nil, err
	}
	return guesses, nil
}

// IncrGuessCount bumps the per-game guess counter.
func (r *GuessRepository) IncrGuessCount(ctx context.Context, gameID string) (int64, error) {
	return r.store.Incr(ctx, keyGuessCount(gameID))
}

// GetGuessCount returns the per-game guess counter, 0 when absent.
func (r *GuessRepository) GetGuessCount(ctx context.Context, gameID string) (int, error) {
	raw, err := r.store.Get(ctx, keyGuessCount(gameID))
	if errors.Is(err, kv.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return n, nil
}
