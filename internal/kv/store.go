package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kv: key not found")

// Store is the narrow key-value contract the game state lives behind.
// Values are strings (JSON documents or decimal counters). The store offers
// no transactions; Incr and SetNX are the only atomic primitives and every
// multi-key write path is best-effort.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes key unconditionally.
	Set(ctx context.Context, key, value string) error
	// SetNX writes key only if it does not exist and reports whether it wrote.
	SetNX(ctx context.Context, key, value string) (bool, error)
	// Incr atomically increments a decimal counter, creating it at 0 first.
	Incr(ctx context.Context, key string) (int64, error)
	// Ping checks connectivity for health probes.
	Ping(ctx context.Context) error
}
