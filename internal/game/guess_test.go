package game

import (
	"context"
	"testing"
	"time"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
)

func TestIsHitBoundary(t *testing.T) {
	target := domain.TargetShape{Kind: domain.ShapeCircle, Color: domain.ColorRed, X: 100, Y: 100}

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"dead center", 100, 100, true},
		{"close by", 105, 102, true},        // distance ~5.39
		{"exactly on radius", 115, 100, true}, // distance 15.0
		{"just outside", 116, 100, false},
		{"diagonal inside", 110, 110, true},  // distance ~14.14
		{"diagonal outside", 111, 111, false}, // distance ~15.56
		{"far away", 300, 300, false},
	}

	for _, tc := range cases {
		if got := domain.IsHit(tc.x, tc.y, target); got != tc.want {
			t.Fatalf("%s: IsHit(%d,%d) = %v; want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRecordGuessCorrect(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	out, err := e.engine.RecordGuess(ctx, g.ID, "alice", 105, 102, 4)
	if err != nil {
		t.Fatalf("record guess: %v", err)
	}
	if !out.Recorded || !out.IsCorrect {
		t.Fatalf("outcome = %+v; want recorded correct", out)
	}
	if out.Target == nil || out.Target.X != 100 {
		t.Fatalf("target missing from outcome: %+v", out.Target)
	}
	if len(out.Ledger) != 1 || out.Ledger[0].Username != "alice" {
		t.Fatalf("ledger = %+v; want alice's guess", out.Ledger)
	}

	count, _ := e.guesses.GetGuessCount(ctx, g.ID)
	if count != 1 {
		t.Fatalf("guess count = %d; want 1", count)
	}
	correct, _ := e.counters.Correct(ctx)
	if correct != 1 {
		t.Fatalf("total_correct_guesses = %d; want 1", correct)
	}
}

func TestRecordGuessIncorrect(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	if _, err := e.engine.RecordGuess(ctx, g.ID, "alice", 105, 102, 4); err != nil {
		t.Fatalf("alice: %v", err)
	}

	out, err := e.engine.RecordGuess(ctx, g.ID, "bob", 300, 300, 9)
	if err != nil {
		t.Fatalf("bob: %v", err)
	}
	if !out.Recorded || out.IsCorrect {
		t.Fatalf("outcome = %+v; want recorded incorrect", out)
	}

	total, _ := e.counters.Guesses(ctx)
	correct, _ := e.counters.Correct(ctx)
	if total != 2 || correct != 1 {
		t.Fatalf("counters = %d/%d; want 2/1", total, correct)
	}
}

func TestRecordGuessRejectsSecondAttempt(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	if _, err := e.engine.RecordGuess(ctx, g.ID, "alice", 105, 102, 4); err != nil {
		t.Fatalf("first: %v", err)
	}

	out, err := e.engine.RecordGuess(ctx, g.ID, "alice", 101, 99, 2)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if out.Recorded || out.Rejected != RejectAlreadyGuessed {
		t.Fatalf("outcome = %+v; want already-guessed rejection", out)
	}

	ledger, _ := e.guesses.GetGuesses(ctx, g.ID)
	if len(ledger) != 1 {
		t.Fatalf("ledger grew on rejection: %d entries", len(ledger))
	}
	count, _ := e.guesses.GetGuessCount(ctx, g.ID)
	if count != 1 {
		t.Fatalf("guess count = %d; want unchanged 1", count)
	}
}

func TestRecordGuessInvalidStates(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	// unknown game
	out, err := e.engine.RecordGuess(ctx, "post_ghost", "alice", 1, 1, 1)
	if err != nil || out.Rejected != RejectInvalidState {
		t.Fatalf("unknown game outcome = %+v, %v", out, err)
	}

	// hub record
	hub, err := e.registry.CreateHub(ctx, "mod")
	if err != nil {
		t.Fatalf("hub: %v", err)
	}
	out, err = e.engine.RecordGuess(ctx, hub.ID, "alice", 1, 1, 1)
	if err != nil || out.Rejected != RejectInvalidState {
		t.Fatalf("hub outcome = %+v, %v", out, err)
	}

	// revealed game
	g := e.mustCreate(t, "creator")
	if _, err := e.revealer.Reveal(ctx, g.ID, "creator"); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	out, err = e.engine.RecordGuess(ctx, g.ID, "alice", 100, 100, 1)
	if err != nil || out.Rejected != RejectInvalidState {
		t.Fatalf("revealed outcome = %+v, %v", out, err)
	}
}

func TestRecordGuessSetsTimestamp(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e.engine.now = func() time.Time { return fixed }

	out, err := e.engine.RecordGuess(ctx, g.ID, "alice", 50, 50, 7)
	if err != nil || !out.Recorded {
		t.Fatalf("record: %+v, %v", out, err)
	}
	if out.Ledger[0].Timestamp != fixed.UnixMilli() {
		t.Fatalf("timestamp = %d; want %d", out.Ledger[0].Timestamp, fixed.UnixMilli())
	}
	if out.Ledger[0].SecondsTaken != 7 {
		t.Fatalf("secondsTaken = %d; want 7", out.Ledger[0].SecondsTaken)
	}
}
