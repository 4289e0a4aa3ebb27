package inventory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the product list under a single Redis key.
type RedisSlot struct {
	Client *redis.Client
	Key    string
}

// NewRedisSlot connects lazily to the Redis server at url, e.g.
// "redis://localhost:6379/0".
func NewRedisSlot(url, key string) (*RedisSlot, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url %q: %w", url, err)
	}
	return &RedisSlot{Client: redis.NewClient(opts), Key: key}, nil
}

func (s *RedisSlot) String() string {
	return fmt.Sprintf("redis://%s/%s", s.Client.Options().Addr, s.Key)
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("key %q: %w", s.Key, fs.ErrNotExist)
	}
	return data, err
}

// Write sets the key, a single SET being atomic.
func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	return s.Client.Set(ctx, s.Key, data, 0).Err()
}

func (s *RedisSlot) Close() error { return s.Client.Close() }
