package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for orders
type Repository interface {
	// FindByID finds an order by its ID, including items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByProviderOrderID finds an order by the payment provider's order
	// token. Used for idempotent creation on payment verification.
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (*Order, error)

	// FindAll lists orders, newest first
	FindAll(ctx context.Context, filter ListFilter) ([]Order, int64, error)

	// Save creates or updates an order with its items
	Save(ctx context.Context, o *Order) error
}

// ListFilter narrows admin order listings
type ListFilter struct {
	Status        *Status
	PaymentStatus *PaymentStatus
	Page          int
	PageSize      int
}
