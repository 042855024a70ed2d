// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shared cache for multi-instance deployments, TTL handled by Redis

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"taxresearch-api/pkg/config"
)

// ErrCacheMiss is returned when a key is not found.
var ErrCacheMiss = errors.New("cache: key not found")

// Client implements the Cache interface using Redis.
type Client struct {
	client *redis.Client
}

// NewClient creates a Redis cache instance and verifies connectivity.
func NewClient(cfg config.RedisConfig) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{client: client}, nil
}

// Get retrieves a value from Redis.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL. A zero TTL means no
// expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}
