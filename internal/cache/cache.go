package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a byte-oriented cache with TTL semantics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Pinger is implemented by stores backed by a live connection. Health checks
// probe it when present.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisStore implements Store on top of a Redis instance.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore pings the instance before returning the store.
func NewRedisStore(ctx context.Context, addr string, defaultTTL time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{client: client, ttl: defaultTTL}, nil
}

// Get returns the cached value and whether the key was present.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores the value. A non-positive ttl falls back to the default.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

// InvalidatePrefix drops every key starting with prefix.
func (s *RedisStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Ping probes the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// NoopStore is used when no Redis address is configured. Every lookup is a
// miss.
type NoopStore struct{}

func (NoopStore) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }

func (NoopStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopStore) InvalidatePrefix(ctx context.Context, prefix string) error { return nil }
