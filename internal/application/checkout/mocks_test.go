package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/order"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*order.Order, error) {
	args := m.Called(ctx, providerOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter order.ListFilter) ([]order.Order, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of checkout.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, req *checkout.CreateGatewayOrderRequest) (*checkout.CreateGatewayOrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CreateGatewayOrderResponse), args.Error(1)
}

func (m *MockPaymentGateway) GetOrder(ctx context.Context, providerOrderID string) (*checkout.GatewayOrder, error) {
	args := m.Called(ctx, providerOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.GatewayOrder), args.Error(1)
}

// memCartStore is a minimal in-memory cart.Store for workflow tests
type memCartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]*cart.Cart)}
}

func (s *memCartStore) Load(ctx context.Context, sessionKey string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionKey]; ok {
		return c, nil
	}
	return cart.New(), nil
}

func (s *memCartStore) Save(ctx context.Context, sessionKey string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionKey] = c
	return nil
}

func (s *memCartStore) Delete(ctx context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionKey)
	return nil
}

func (s *memCartStore) has(sessionKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.carts[sessionKey]
	return ok
}

// memSnapshotStore is a minimal in-memory checkout.SnapshotStore
type memSnapshotStore struct {
	mu    sync.Mutex
	snaps map[string]*checkout.PendingOrderSnapshot
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{snaps: make(map[string]*checkout.PendingOrderSnapshot)}
}

func (s *memSnapshotStore) Put(ctx context.Context, providerOrderID string, snap *checkout.PendingOrderSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[providerOrderID] = snap
	return nil
}

func (s *memSnapshotStore) Get(ctx context.Context, providerOrderID string) (*checkout.PendingOrderSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snaps[providerOrderID], nil
}

func (s *memSnapshotStore) Delete(ctx context.Context, providerOrderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, providerOrderID)
	return nil
}

func (s *memSnapshotStore) has(providerOrderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.snaps[providerOrderID]
	return ok
}
