package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps a redis connection and fails safe: every error behaves as a
// cache miss so the store stays the source of truth.
type Client struct {
	rdb *redis.Client
}

// New returns a disabled client when addr is empty.
func New(addr string) *Client {
	if addr == "" {
		return &Client{}
	}
	return &Client{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// GetJSON unmarshals a cached value into dest and reports whether it was
// found.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores a value with a TTL, ignoring redis errors.
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, raw, ttl)
}

// Invalidate removes keys, ignoring redis errors.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
