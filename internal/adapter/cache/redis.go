package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// localCacheSize bounds the TinyLFU front of the Redis store.
const localCacheSize = 10_000

// Redis stores values in Redis with a small local TinyLFU in front.
type Redis struct {
	data *cache.Cache
	ttl  time.Duration
}

var _ Store = (*Redis)(nil)

// NewRedisClient parses redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewRedis creates a Redis store over an existing client.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		data: cache.New(&cache.Options{
			Redis:      rdb,
			LocalCache: cache.NewTinyLFU(localCacheSize, ttl),
		}),
		ttl: ttl,
	}
}

func (r *Redis) Get(ctx context.Context, name, key string) (string, error) {
	var val string
	err := r.data.Get(ctx, cacheKey(name, key), &val)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache get %s: %w", name, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, name, key, val string) error {
	err := r.data.Set(&cache.Item{
		Ctx:   ctx,
		Key:   cacheKey(name, key),
		Value: val,
		TTL:   r.ttl,
	})
	if err != nil {
		return fmt.Errorf("cache set %s: %w", name, err)
	}
	return nil
}

func (r *Redis) Purge(ctx context.Context, name, key string) error {
	err := r.data.Delete(ctx, cacheKey(name, key))
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return fmt.Errorf("cache purge %s: %w", name, err)
	}
	return nil
}
