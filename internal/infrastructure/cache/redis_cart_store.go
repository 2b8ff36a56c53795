package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/backend/internal/domain/cart"
)

const cartKeyPrefix = "cart:"

// RedisCartStore persists carts in Redis so they survive across devices
// and server restarts. Writes are last-write-wins, no per-key locking.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a cart store backed by an existing Redis client
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Load returns the cart for the session key, or an empty cart if none exists.
// Corrupt payloads are treated as absent rather than surfaced: a shopper
// with an unreadable cart gets a fresh one, not an error page.
func (s *RedisCartStore) Load(ctx context.Context, sessionKey string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c := cart.New()
	if err := json.Unmarshal(data, c); err != nil {
		return cart.New(), nil
	}
	return c, nil
}

// Save overwrites the stored cart for the session key
func (s *RedisCartStore) Save(ctx context.Context, sessionKey string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+sessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the stored cart for the session key
func (s *RedisCartStore) Delete(ctx context.Context, sessionKey string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

var _ cart.Store = (*RedisCartStore)(nil)
