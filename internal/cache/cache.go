package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the subset of cache operations the services depend on.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Client wraps redis.Client. Reads fail safe and behave like a miss when redis
// is unreachable; writes report the redis error so callers can log it.
type Client struct {
	client *redis.Client
}

var _ Store = (*Client)(nil)

// New creates a new Redis client. An empty addr yields a client that always misses.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return &Client{}
	}
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL. A disabled client stores nothing.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// GetJSON decodes a cached value into dst and reports whether it was a usable hit.
func GetJSON(ctx context.Context, s Store, key string, dst any) bool {
	if s == nil {
		return false
	}
	data, _ := s.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON encodes v and stores it. Encoding and store failures are treated like
// a cache outage and only cost the next read a miss.
func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) {
	if s == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.Set(ctx, key, payload, ttl)
}
