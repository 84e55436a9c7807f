package profile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a built context is served without rebuilding.
const DefaultTTL = 2 * time.Minute

// Cache holds the rendered context text between rebuilds. Implementations
// decide how TTL is enforced; Get must report a miss once the entry expires
// or when the stored text is empty.
type Cache interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, text string)
}

// MemoryCache is the default single-process cache. Overlapping requests may
// still rebuild concurrently on expiry; the last writer wins.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	builtAt time.Time
	text    string
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return NewMemoryCacheWithClock(ttl, time.Now)
}

// NewMemoryCacheWithClock injects the clock so TTL policy is testable.
func NewMemoryCacheWithClock(ttl time.Duration, now func() time.Time) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: now}
}

func (c *MemoryCache) Get(_ context.Context) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.text == "" || c.now().Sub(c.builtAt) >= c.ttl {
		return "", false
	}
	return c.text, true
}

func (c *MemoryCache) Set(_ context.Context, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.builtAt = c.now()
}

const redisCacheKey = "portfolio:profile-context"

// RedisCache shares one built context across instances. Expiry is delegated
// to the server-side TTL. Redis failures degrade to cache misses so the
// builder falls back to a fresh rebuild.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (string, bool) {
	text, err := c.client.Get(ctx, redisCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "profile cache read failed", "error", err)
		}
		return "", false
	}
	return text, text != ""
}

func (c *RedisCache) Set(ctx context.Context, text string) {
	if err := c.client.Set(ctx, redisCacheKey, text, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "profile cache write failed", "error", err)
	}
}
