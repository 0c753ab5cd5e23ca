package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fekuna/omnipos-terminal-service/internal/cart"
	"github.com/fekuna/omnipos-terminal-service/pkg/cache"
)

// cartTTL keeps abandoned carts from piling up; a terminal inactive for a
// day starts fresh.
const cartTTL = 24 * time.Hour

type RedisStore struct {
	cache *cache.RedisClient
}

func NewRedisStore(c *cache.RedisClient) *RedisStore {
	return &RedisStore{cache: c}
}

func key(terminal string) string {
	return "cart:" + terminal
}

func (s *RedisStore) Get(ctx context.Context, terminal string) (*cart.Cart, error) {
	val, err := s.cache.Client.Get(ctx, key(terminal)).Result()
	if err != nil {
		if err == redis.Nil {
			return cart.New(terminal), nil
		}
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.cache.Client.Set(ctx, key(c.Terminal), data, cartTTL).Err()
}

func (s *RedisStore) Clear(ctx context.Context, terminal string) error {
	return s.cache.Client.Del(ctx, key(terminal)).Err()
}
