package cache

import (
	"context"
	"sync"
	"time"
)

// TTLs for the derived-data caches. The cache is a read-through accelerator
// only; the store stays the system of record and staleness is bounded by
// the TTL, never invalidated proactively.
const (
	UserGuessTTL   = 5 * time.Minute
	CanvasTTL      = 30 * time.Minute // canvas is immutable after creation
	GameStatsTTL   = 1 * time.Minute
	GlobalStatsTTL = 30 * time.Second
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache memoizes loader results per key for a fixed TTL.
type Cache[V any] struct {
	ttl time.Duration
	mu  sync.Mutex
	m   map[string]entry[V]
	now func() time.Time
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl: ttl,
		m:   make(map[string]entry[V]),
		now: time.Now,
	}
}

// GetOrLoad returns the cached value for key, calling load on a miss or
// after expiry. Loader errors are returned as-is and nothing is cached,
// so a failed read never pins a bad value.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.m[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	val, err := load(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.m[key] = entry[V]{value: val, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return val, nil
}
