package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskcollab/backend/internal/infrastructure/logger"
)

// DefaultCacheTTL is used when the configuration does not set one.
const DefaultCacheTTL = 3600 * time.Second

type readOutcome int

const (
	readHit readOutcome = iota
	readMiss
	// readFailOpen means the cache backend errored or held an undecodable
	// payload. The producer result is returned to the caller but the cache
	// is left alone: no repopulating write until the backend is healthy.
	readFailOpen
)

// Cache is the read-through accessor in front of the store. A cache fault
// is never surfaced to callers; it degrades to a direct read.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{rdb: rdb, ttl: ttl, log: log}
}

// read classifies the cache lookup. Backend errors are folded into the
// fail-open outcome here so callers see an explicit branch, not an error.
func (c *Cache) read(ctx context.Context, key string) (string, readOutcome) {
	payload, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		return payload, readHit
	case errors.Is(err, redis.Nil):
		return "", readMiss
	default:
		c.log.Warnw("cache_read_failed", "key", key, "error", err)
		return "", readFailOpen
	}
}

// Invalidate drops the given cache entries. Unlike reads, a failed
// invalidation is surfaced: a stale entry would otherwise outlive the
// mutation that should have evicted it.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate cache %v: %w", keys, err)
	}
	return nil
}

// GetOrSet returns the cached value under key, or invokes produce, stores
// its result with the cache TTL and returns it. At most one cache write per
// miss, none on a hit or on a backend fault.
func GetOrSet[T any](ctx context.Context, c *Cache, key string, produce func(ctx context.Context) (T, error)) (T, error) {
	payload, outcome := c.read(ctx, key)
	if outcome == readHit {
		var value T
		err := json.Unmarshal([]byte(payload), &value)
		if err == nil {
			return value, nil
		}
		c.log.Warnw("cache_payload_decode_failed", "key", key, "error", err)
		outcome = readFailOpen
	}

	value, err := produce(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if outcome == readMiss {
		data, err := json.Marshal(value)
		if err != nil {
			c.log.Warnw("cache_payload_encode_failed", "key", key, "error", err)
		} else if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warnw("cache_write_failed", "key", key, "error", err)
		}
	}

	return value, nil
}
