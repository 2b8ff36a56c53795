package cache

import (
	"context"
	"sync"
	"time"

	"github.com/storefront/backend/internal/domain/checkout"
)

type snapshotEntry struct {
	snap      *checkout.PendingOrderSnapshot
	expiresAt time.Time
}

// InMemorySnapshotStore implements SnapshotStore using an in-memory map.
// It starts a background goroutine that evicts expired entries so
// abandoned checkout sessions do not accumulate.
type InMemorySnapshotStore struct {
	mu        sync.RWMutex
	entries   map[string]snapshotEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySnapshotStore creates a new in-memory snapshot store
func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	store := &InMemorySnapshotStore{
		entries:  make(map[string]snapshotEntry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Put stores a snapshot under the provider order token with a TTL
func (s *InMemorySnapshotStore) Put(ctx context.Context, providerOrderID string, snap *checkout.PendingOrderSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[providerOrderID] = snapshotEntry{
		snap:      snap,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get returns the snapshot for the token, or (nil, nil) if absent or expired
func (s *InMemorySnapshotStore) Get(ctx context.Context, providerOrderID string) (*checkout.PendingOrderSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[providerOrderID]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return e.snap, nil
}

// Delete removes the snapshot for the token; no-op if absent
func (s *InMemorySnapshotStore) Delete(ctx context.Context, providerOrderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, providerOrderID)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *InMemorySnapshotStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (s *InMemorySnapshotStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemorySnapshotStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}

// Size returns the number of stashed snapshots (for testing/monitoring)
func (s *InMemorySnapshotStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ checkout.SnapshotStore = (*InMemorySnapshotStore)(nil)
