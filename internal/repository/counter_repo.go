package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/GitBolt/shapefinder-sub000/internal/kv"
)

// CounterRepository maintains the three running global counters. They are
// incremented on each write path rather than recomputed, so aggregate stats
// never require rescanning every game. Increments use the store's atomic
// primitive; the cross-key relationship with the ledgers is best-effort.
type CounterRepository struct {
	store kv.Store
}

func NewCounterRepository(store kv.Store) *CounterRepository {
	return &CounterRepository{store: store}
}

func (r *CounterRepository) IncrGames(ctx context.Context) (int64, error) {
	return r.store.Incr(ctx, keyTotalGames)
}

func (r *CounterRepository) IncrGuesses(ctx context.Context) (int64, error) {
	return r.store.Incr(ctx, keyTotalGuesses)
}

func (r *CounterRepository) IncrCorrect(ctx context.Context) (int64, error) {
	return r.store.Incr(ctx, keyTotalCorrect)
}

func (r *CounterRepository) Games(ctx context.Context) (int, error) {
	return r.get(ctx, keyTotalGames)
}

func (r *CounterRepository) Guesses(ctx context.Context) (int, error) {
	return r.get(ctx, keyTotalGuesses)
}

func (r *CounterRepository) Correct(ctx context.Context) (int, error) {
	return r.get(ctx, keyTotalCorrect)
}

func (r *CounterRepository) get(ctx context.Context, key string) (int, error) {
	raw, err := r.store.Get(ctx, key)
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
