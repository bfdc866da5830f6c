package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InMemoryCache always misses. Handlers fall back to the database on
// every call, which keeps e2e assertions about computed scores simple.
type InMemoryCache struct{}

func (c *InMemoryCache) Get(ctx context.Context, key string, dest any) error {
	return redis.Nil
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}

// TrackingCache stores entries as JSON and counts calls. Set runs on a
// background goroutine in the handlers, so all state is mutex-guarded.
type TrackingCache struct {
	mu       sync.Mutex
	getCalls int
	setCalls int
	data     map[string]cacheEntry
}

type cacheEntry struct {
	payload []byte
	expiry  time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data: make(map[string]cacheEntry),
	}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.getCalls++
	entry, exists := c.data[key]
	if !exists || time.Now().After(entry.expiry) {
		return redis.Nil
	}
	return json.Unmarshal(entry.payload, dest)
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setCalls++
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = cacheEntry{payload: payload, expiry: time.Now().Add(exp)}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

func (c *TrackingCache) GetCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls
}

func (c *TrackingCache) SetCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCalls
}
