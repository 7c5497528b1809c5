// Package cache provides small string caches shared by adapters. The Redis
// store is used when a Redis URL is configured, otherwise the in-process LRU.
package cache

import (
	"context"
)

// Store caches string values under a namespace name. Get returns "" on a miss.
type Store interface {
	Get(ctx context.Context, name, key string) (string, error)
	Set(ctx context.Context, name, key, val string) error
	Purge(ctx context.Context, name, key string) error
}

func cacheKey(name, key string) string {
	return "proximity/" + name + "/" + key
}
