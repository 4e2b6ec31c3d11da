package game

import (
	"context"
	"testing"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
	"github.com/GitBolt/shapefinder-sub000/internal/repository"
)

type env struct {
	store    *kv.MemoryStore
	games    *repository.GameRepository
	guesses  *repository.GuessRepository
	counters *repository.CounterRepository
	registry *Registry
	engine   *Engine
	stats    *Stats
	revealer *Revealer
}

func newEnv() *env {
	store := kv.NewMemoryStore()
	games := repository.NewGameRepository(store)
	guesses := repository.NewGuessRepository(store)
	counters := repository.NewCounterRepository(store)
	stats := NewStats(games, guesses, counters)

	return &env{
		store:    store,
		games:    games,
		guesses:  guesses,
		counters: counters,
		registry: NewRegistry(games, counters),
		engine:   NewEngine(games, guesses, counters),
		stats:    stats,
		revealer: NewRevealer(games, guesses, stats),
	}
}

// mustCreate makes a game with the standard test target at (100, 100) on a
// 600x400 canvas.
func (e *env) mustCreate(t *testing.T, creator string) *domain.GameRecord {
	t.Helper()
	g, err := e.registry.Create(context.Background(), creator,
		domain.TargetShape{Kind: domain.ShapeCircle, Color: domain.ColorRed, X: 100, Y: 100},
		domain.CanvasConfig{Width: 600, Height: 400},
	)
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	return g
}
