package cache

import (
	"context"
	"sync"

	"github.com/storefront/backend/internal/domain/cart"
)

// InMemoryCartStore holds carts in a process-local map. Suitable for
// single-instance deployments and testing; carts do not survive restarts.
type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

// NewInMemoryCartStore creates a new in-memory cart store
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{carts: make(map[string]*cart.Cart)}
}

// Load returns a copy of the cart for the session key, or an empty cart
func (s *InMemoryCartStore) Load(ctx context.Context, sessionKey string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.carts[sessionKey]
	if !exists {
		return cart.New(), nil
	}

	// Copy so callers cannot mutate shared state without Save
	c := cart.New()
	c.Items = append(c.Items, stored.Items...)
	return c, nil
}

// Save overwrites the stored cart for the session key
func (s *InMemoryCartStore) Save(ctx context.Context, sessionKey string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cart.New()
	stored.Items = append(stored.Items, c.Items...)
	s.carts[sessionKey] = stored
	return nil
}

// Delete removes the stored cart for the session key
func (s *InMemoryCartStore) Delete(ctx context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionKey)
	return nil
}

var _ cart.Store = (*InMemoryCartStore)(nil)
