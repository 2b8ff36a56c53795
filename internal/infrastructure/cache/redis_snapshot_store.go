package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/backend/internal/domain/checkout"
)

const snapshotKeyPrefix = "checkout:pending:"

// RedisSnapshotStore stashes pending-order snapshots in Redis keyed by the
// payment provider's order token. The TTL bounds how long the shopper can
// linger on the hosted checkout before the session is considered expired.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a snapshot store backed by an existing Redis client
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

// Put stores a snapshot under the provider order token with a TTL
func (s *RedisSnapshotStore) Put(ctx context.Context, providerOrderID string, snap *checkout.PendingOrderSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKeyPrefix+providerOrderID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to stash snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot for the token, or (nil, nil) if absent or expired
func (s *RedisSnapshotStore) Get(ctx context.Context, providerOrderID string) (*checkout.PendingOrderSnapshot, error) {
	data, err := s.client.Get(ctx, snapshotKeyPrefix+providerOrderID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap checkout.PendingOrderSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes the snapshot for the token; no-op if absent
func (s *RedisSnapshotStore) Delete(ctx context.Context, providerOrderID string) error {
	if err := s.client.Del(ctx, snapshotKeyPrefix+providerOrderID).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

var _ checkout.SnapshotStore = (*RedisSnapshotStore)(nil)
