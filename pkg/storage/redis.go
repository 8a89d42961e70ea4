package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisKV keeps the persisted snapshots in Redis. Values are stored without a
// TTL because they stand in for durable device storage.
type RedisKV struct {
	client    *redis.Client
	namespace string
}

func NewRedisKV(redisURL, namespace string) (*RedisKV, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if namespace == "" {
		namespace = "storefront"
	}
	return &RedisKV{client: client, namespace: namespace}, nil
}

func (r *RedisKV) key(key string) string {
	return r.namespace + ":" + key
}

func (r *RedisKV) Get(key string) ([]byte, error) {
	data, err := r.client.Get(context.Background(), r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

func (r *RedisKV) Set(key string, value []byte) error {
	if err := r.client.Set(context.Background(), r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Delete(key string) error {
	if err := r.client.Del(context.Background(), r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close releases the redis connection.
func (r *RedisKV) Close() error {
	return r.client.Close()
}
