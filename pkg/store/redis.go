package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vedantpatel1997/dapr-storefront/pkg/apperrors"
)

// RedisStore implements Store on a Redis instance.
type RedisStore struct {
	name   string
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using a URL like redis://host:6379 and
// verifies the connection with a ping. A zero ttl means keys never expire.
func NewRedisStore(name, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, &apperrors.DownstreamError{Target: name, Op: "ping", Err: err}
	}

	return &RedisStore{name: name, client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.DownstreamError{Target: s.name, Op: "get", Err: err}
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return &apperrors.DownstreamError{Target: s.name, Op: "set", Err: err}
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return &apperrors.DownstreamError{Target: s.name, Op: "delete", Err: err}
	}
	return nil
}

// Close releases the underlying Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
