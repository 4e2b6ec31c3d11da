package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GitBolt/shapefinder-sub000/internal/domain"
	"github.com/GitBolt/shapefinder-sub000/internal/kv"
)

func testGame(id, code string) *domain.GameRecord {
	return &domain.GameRecord{
		ID:        id,
		ShortID:   code,
		CreatedBy: "creator",
		Target:    domain.TargetShape{Kind: domain.ShapeCircle, Color: domain.ColorRed, X: 100, Y: 100},
		Canvas:    domain.CanvasConfig{Width: 600, Height: 400},
		CreatedAt: time.Now().UTC(),
	}
}

func TestGameRepoCreateAndGet(t *testing.T) {
	r := NewGameRepository(kv.NewMemoryStore())
	ctx := context.Background()

	if err := r.Create(ctx, testGame("post_1", "1234")); err != nil {
		t.Fatalf("create: %v", err)
	}

	g, err := r.Get(ctx, "post_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.ShortID != "1234" || g.Target.X != 100 || g.Revealed {
		t.Fatalf("unexpected record: %+v", g)
	}

	canvas, err := r.GetCanvas(ctx, "post_1")
	if err != nil || canvas.Width != 600 {
		t.Fatalf("canvas = %+v, %v", canvas, err)
	}

	ids, err := r.ListGameIDs(ctx)
	if err != nil || len(ids) != 1 || ids[0] != "post_1" {
		t.Fatalf("games list = %v, %v", ids, err)
	}
}

func TestGameRepoGetMissing(t *testing.T) {
	r := NewGameRepository(kv.NewMemoryStore())

	if _, err := r.Get(context.Background(), "nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameRepoRevealFlag(t *testing.T) {
	r := NewGameRepository(kv.NewMemoryStore())
	ctx := context.Background()

	if err := r.Create(ctx, testGame("post_1", "1234")); err != nil {
		t.Fatalf("create: %v", err)
	}

	revealed, err := r.IsRevealed(ctx, "post_1")
	if err != nil || revealed {
		t.Fatalf("fresh game revealed = %v, %v; want false", revealed, err)
	}

	if err := r.SetRevealed(ctx, "post_1"); err != nil {
		t.Fatalf("set revealed: %v", err)
	}

	g, err := r.Get(ctx, "post_1")
	if err != nil || !g.Revealed {
		t.Fatalf("revealed not merged into record: %+v, %v", g, err)
	}
}

func TestGameRepoShortCodeIndexNeverReassigns(t *testing.T) {
	r := NewGameRepository(kv.NewMemoryStore())
	ctx := context.Background()

	ok, err := r.IndexShortCode(ctx, "0042", "post_a")
	if err != nil || !ok {
		t.Fatalf("first index = %v, %v; want true", ok, err)
	}

	ok, err = r.IndexShortCode(ctx, "0042", "post_b")
	if err != nil || ok {
		t.Fatalf("reassign = %v, %v; want false", ok, err)
	}

	id, err := r.ResolveShortCode(ctx, "0042")
	if err != nil || id != "post_a" {
		t.Fatalf("resolve = %q, %v; want post_a", id, err)
	}
}

func TestGameRepoHubSingleton(t *testing.T) {
	r := NewGameRepository(kv.NewMemoryStore())
	ctx := context.Background()

	id, err := r.GetHub(ctx)
	if err != nil || id != "" {
		t.Fatalf("empty hub = %q, %v", id, err)
	}

	if ok, _ := r.SetHub(ctx, "post_hub"); !ok {
		t.Fatal("first SetHub should win")
	}
	if ok, _ := r.SetHub(ctx, "post_other"); ok {
		t.Fatal("second SetHub should lose")
	}

	id, _ = r.GetHub(ctx)
	if id != "post_hub" {
		t.Fatalf("hub = %q; want post_hub", id)
	}
}
