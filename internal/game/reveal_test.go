package game

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestRevealExposesLedgerAndCloses(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	e.engine.RecordGuess(ctx, g.ID, "alice", 105, 102, 3)
	e.engine.RecordGuess(ctx, g.ID, "bob", 300, 300, 5)

	res, err := e.revealer.Reveal(ctx, g.ID, "creator")
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if len(res.Guesses) != 2 {
		t.Fatalf("ledger = %d entries; want 2", len(res.Guesses))
	}
	if res.Target.X != 100 || res.Target.Y != 100 {
		t.Fatalf("target = %+v", res.Target)
	}

	revealed, _ := e.games.IsRevealed(ctx, g.ID)
	if !revealed {
		t.Fatal("game must be revealed after a successful reveal")
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	e.engine.RecordGuess(ctx, g.ID, "alice", 105, 102, 3)

	first, err := e.revealer.Reveal(ctx, g.ID, "creator")
	if err != nil {
		t.Fatalf("first reveal: %v", err)
	}
	second, err := e.revealer.Reveal(ctx, g.ID, "creator")
	if err != nil {
		t.Fatalf("second reveal: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reveal not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}

	revealed, _ := e.games.IsRevealed(ctx, g.ID)
	if !revealed {
		t.Fatal("revealed flag must stay true")
	}
}

func TestRevealCreatorOnly(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	g := e.mustCreate(t, "creator")

	if _, err := e.revealer.Reveal(ctx, g.ID, "random_viewer"); !errors.Is(err, ErrNotCreator) {
		t.Fatalf("viewer reveal err = %v; want ErrNotCreator", err)
	}

	revealed, _ := e.games.IsRevealed(ctx, g.ID)
	if revealed {
		t.Fatal("rejected reveal must not change state")
	}

	// once revealed by the creator, anyone can re-read the results
	if _, err := e.revealer.Reveal(ctx, g.ID, "creator"); err != nil {
		t.Fatalf("creator reveal: %v", err)
	}
	if _, err := e.revealer.Reveal(ctx, g.ID, "random_viewer"); err != nil {
		t.Fatalf("viewer read after reveal: %v", err)
	}
}

func TestRevealRejectsHub(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	hub, err := e.registry.CreateHub(ctx, "mod")
	if err != nil {
		t.Fatalf("hub: %v", err)
	}

	if _, err := e.revealer.Reveal(ctx, hub.ID, "mod"); !errors.Is(err, ErrHubRecord) {
		t.Fatalf("hub reveal err = %v; want ErrHubRecord", err)
	}
}
