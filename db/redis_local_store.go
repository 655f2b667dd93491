package db

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisLocalStore keeps the persisted client keys in Redis so they survive
// gateway restarts, the way localStorage survives page loads.
type RedisLocalStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisLocalStore wraps an initialized go-redis client.
func NewRedisLocalStore(ctx context.Context, client *redis.Client) *RedisLocalStore {
	return &RedisLocalStore{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a key-value pair with no expiry.
func (r *RedisLocalStore) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key.
func (r *RedisLocalStore) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Take reads and deletes the key atomically via GETDEL.
func (r *RedisLocalStore) Take(key string) (string, error) {
	val, err := r.client.GetDel(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (r *RedisLocalStore) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *RedisLocalStore) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
