package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is an in-process LRU with a fixed TTL per entry.
type Memory struct {
	data *expirable.LRU[string, string]
}

var _ Store = (*Memory)(nil)

// NewMemory creates a Memory store holding at most capacity entries.
func NewMemory(capacity int, ttl time.Duration) *Memory {
	return &Memory{
		data: expirable.NewLRU[string, string](capacity, nil, ttl),
	}
}

func (m *Memory) Get(_ context.Context, name, key string) (string, error) {
	v, ok := m.data.Get(cacheKey(name, key))
	if !ok {
		return "", nil
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, name, key, val string) error {
	m.data.Add(cacheKey(name, key), val)
	return nil
}

func (m *Memory) Purge(_ context.Context, name, key string) error {
	m.data.Remove(cacheKey(name, key))
	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	return m.data.Len()
}
