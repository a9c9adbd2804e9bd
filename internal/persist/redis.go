package persist

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// Redis keeps the snapshot under StorageKey with no expiry.
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, addr string, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	val, err := r.client.Get(ctx, StorageKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *Redis) Save(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, StorageKey, data, 0).Err()
}

func (r *Redis) Close(ctx context.Context) error {
	return r.client.Close()
}
