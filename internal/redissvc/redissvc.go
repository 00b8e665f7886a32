package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is an optional Redis-backed response cache. The dataset is immutable
// for the process lifetime, so cached pages never need invalidation; the TTL
// only bounds memory on the Redis side. A nil *Cache is a valid no-op cache,
// which keeps call sites free of enabled/disabled branching.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached payload for key, or ok=false on a miss or any
// Redis failure. Cache errors never surface to callers.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the payload under key, best effort.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, key, payload, c.ttl)
}
