package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetOrLoadCachesWithinTTL(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(ctx, "k", load)
		if err != nil || got != 42 {
			t.Fatalf("GetOrLoad = %d, %v; want 42", got, err)
		}
	}

	if calls != 1 {
		t.Fatalf("loader called %d times; want 1", calls)
	}
}

func TestGetOrLoadReloadsAfterExpiry(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if got, _ := c.GetOrLoad(ctx, "k", load); got != 1 {
		t.Fatalf("first load = %d; want 1", got)
	}

	now = now.Add(61 * time.Second)

	if got, _ := c.GetOrLoad(ctx, "k", load); got != 2 {
		t.Fatalf("post-expiry load = %d; want 2", got)
	}
}

func TestGetOrLoadDoesNotCacheErrors(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()

	boom := errors.New("boom")
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	}

	if _, err := c.GetOrLoad(ctx, "k", load); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}

	got, err := c.GetOrLoad(ctx, "k", load)
	if err != nil || got != 7 {
		t.Fatalf("retry = %d, %v; want 7", got, err)
	}
}
