package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerInfo is the validated contact block attached to a checkout attempt.
// Phone is stored in normalized form (91-prefixed digits).
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SnapshotItem is one line of a pending order, flattened for stashing
type SnapshotItem struct {
	VariantID   string          `json:"variant_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PendingOrderSnapshot captures everything needed to reconstruct an order
// after the browser returns from the payment provider's hosted checkout.
// It is transient state, not a durable business record: the durable order
// is only created once verification succeeds.
type PendingOrderSnapshot struct {
	Customer CustomerInfo    `json:"customer"`
	Items    []SnapshotItem  `json:"items"`
	Total    decimal.Decimal `json:"total"`
	CartKey  string          `json:"cart_key"`
}

// SnapshotStore stashes pending-order snapshots keyed by the payment
// provider's order token, surviving the redirect round trip. Entries
// expire after a TTL; abandoned sessions are never cleaned up explicitly.
type SnapshotStore interface {
	// Put stores a snapshot under the provider order token with a TTL
	Put(ctx context.Context, providerOrderID string, snap *PendingOrderSnapshot, ttl time.Duration) error

	// Get returns the snapshot for the token, or (nil, nil) if absent
	// or expired
	Get(ctx context.Context, providerOrderID string) (*PendingOrderSnapshot, error)

	// Delete removes the snapshot for the token; no-op if absent
	Delete(ctx context.Context, providerOrderID string) error
}
