package kv

import (
	"context"
	"os"
	"testing"
	"time"
)

// Integration-style test: runs only if REDIS_ADDR env is set.
func TestRedisStoreIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}

	s := Connect(addr, os.Getenv("REDIS_PASSWORD"), 0)
	ctx := context.Background()

	key := "kvtest_" + time.Now().Format("150405.000")

	ok, err := s.SetNX(ctx, key, "x")
	if err != nil || !ok {
		t.Fatalf("SetNX = %v, %v; want true", ok, err)
	}
	defer s.client.Del(ctx, key)

	ok, err = s.SetNX(ctx, key, "y")
	if err != nil || ok {
		t.Fatalf("second SetNX = %v, %v; want false", ok, err)
	}

	val, err := s.Get(ctx, key)
	if err != nil || val != "x" {
		t.Fatalf("Get = %q, %v; want x", val, err)
	}
}
