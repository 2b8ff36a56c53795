package cart

import "context"

// Store persists carts across sessions keyed by a cart session identifier.
// Persistence is last-write-wins: concurrent writers for the same key are
// not serialized, matching the browser-storage semantics this replaces.
type Store interface {
	// Load returns the cart for the given session key, or an empty cart
	// if none has been stored yet
	Load(ctx context.Context, sessionKey string) (*Cart, error)

	// Save overwrites the stored cart for the given session key
	Save(ctx context.Context, sessionKey string, c *Cart) error

	// Delete removes the stored cart for the given session key
	Delete(ctx context.Context, sessionKey string) error
}
