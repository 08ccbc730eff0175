package redis

import (
	"context"
	"time"

	redisclient "github.com/xchain/logitrack/cmd/redis"
)

// Repository defines the key-value cache used for catalog lookups.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation. All methods are
// no-ops when the client was never initialized, so the cache degrades to
// pass-through in environments without Redis.
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
