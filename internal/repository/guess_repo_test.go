package repository

import (
	"context"
	"testing"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
)

func TestGuessRepoClaimIsExclusive(t *testing.T) {
	r := NewGuessRepository(kv.NewMemoryStore())
	ctx := context.Background()

	g := domain.GuessRecord{Username: "alice", X: 10, Y: 20, Timestamp: 1000}

	ok, err := r.ClaimUserGuess(ctx, "post_1", g)
	if err != nil || !ok {
		t.Fatalf("first claim = %v, %v; want true", ok, err)
	}

	ok, err = r.ClaimUserGuess(ctx, "post_1", domain.GuessRecord{Username: "alice", X: 99, Y: 99})
	if err != nil || ok {
		t.Fatalf("second claim = %v, %v; want false", ok, err)
	}

	// same user on another game is independent
	ok, err = r.ClaimUserGuess(ctx, "post_2", g)
	if err != nil || !ok {
		t.Fatalf("other game claim = %v, %v; want true", ok, err)
	}

	stored, err := r.GetUserGuess(ctx, "post_1", "alice")
	if err != nil || stored == nil || stored.X != 10 {
		t.Fatalf("stored guess = %+v, %v; want original", stored, err)
	}
}

func TestGuessRepoGetUserGuessMissing(t *testing.T) {
	r := NewGuessRepository(kv.NewMemoryStore())

	g, err := r.GetUserGuess(context.Background(), "post_1", "nobody")
	if err != nil || g != nil {
		t.Fatalf("missing guess = %+v, %v; want nil, nil", g, err)
	}
}

func TestGuessRepoLedgerAppend(t *testing.T) {
	r := NewGuessRepository(kv.NewMemoryStore())
	ctx := context.Background()

	ledger, err := r.AppendGuess(ctx, "post_1", domain.GuessRecord{Username: "alice", IsCorrect: true})
	if err != nil || len(ledger) != 1 {
		t.Fatalf("first append = %d entries, %v", len(ledger), err)
	}

	ledger, err = r.AppendGuess(ctx, "post_1", domain.GuessRecord{Username: "bob"})
	if err != nil || len(ledger) != 2 {
		t.Fatalf("second append = %d entries, %v", len(ledger), err)
	}

	if ledger[0].Username != "alice" || ledger[1].Username != "bob" {
		t.Fatalf("ledger order wrong: %+v", ledger)
	}
}

func TestGuessRepoCount(t *testing.T) {
	r := NewGuessRepository(kv.NewMemoryStore())
	ctx := context.Background()

	n, err := r.GetGuessCount(ctx, "post_1")
	if err != nil || n != 0 {
		t.Fatalf("fresh count = %d, %v; want 0", n, err)
	}

	if _, err := r.IncrGuessCount(ctx, "post_1"); err != nil {
		t.Fatalf("incr: %v", err)
	}
	if _, err := r.IncrGuessCount(ctx, "post_1"); err != nil {
		t.Fatalf("incr: %v", err)
	}

	n, err = r.GetGuessCount(ctx, "post_1")
	if err != nil || n != 2 {
		t.Fatalf("count = %d, %v; want 2", n, err)
	}
}

func TestCounterRepo(t *testing.T) {
	r := NewCounterRepository(kv.NewMemoryStore())
	ctx := context.Background()

	games, _ := r.Games(ctx)
	guesses, _ := r.Guesses(ctx)
	correct, _ := r.Correct(ctx)
	if games != 0 || guesses != 0 || correct != 0 {
		t.Fatalf("fresh counters = %d/%d/%d; want zeros", games, guesses, correct)
	}

	r.IncrGames(ctx)
	r.IncrGuesses(ctx)
	r.IncrGuesses(ctx)
	r.IncrCorrect(ctx)

	games, _ = r.Games(ctx)
	guesses, _ = r.Guesses(ctx)
	correct, _ = r.Correct(ctx)
	if games != 1 || guesses != 2 || correct != 1 {
		t.Fatalf("counters = %d/%d/%d; want 1/2/1", games, guesses, correct)
	}
}
