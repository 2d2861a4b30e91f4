package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/senyum/internal/pkg/models"
)

// ErrCacheMiss is returned by Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

// RedisClient represents a Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.Client
}

// Set stores a key-value pair with an optional expiration
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.Client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key; a missing key yields ErrCacheMiss
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Delete removes keys
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

// IncrWithExpiry increments key and starts its expiry window on first use.
// It returns the new count and the remaining time to live.
func (r *RedisClient) IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	if count == 1 {
		if err := r.Client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("failed to set expiry on %s: %w", key, err)
		}
		return count, window, nil
	}
	ttl, err := r.Client.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read ttl of %s: %w", key, err)
	}
	return count, ttl, nil
}

// Ping checks that Redis is reachable
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
