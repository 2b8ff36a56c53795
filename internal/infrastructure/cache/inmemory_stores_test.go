package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/checkout"
)

func TestInMemoryCartStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	store := NewInMemoryCartStore()

	c, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestInMemoryCartStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewInMemoryCartStore()
	ctx := context.Background()

	c := cart.New()
	c.AddItem(cart.Item{
		Key:       "p1:v1",
		ProductID: "p1",
		Name:      "Millet Dosa Mix",
		Variant:   cart.Variant{ID: "v1", Size: "500g", Price: decimal.NewFromInt(250), ImageURL: "https://img/p1.jpg"},
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(250),
	})
	require.NoError(t, store.Save(ctx, "session-1", c))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.TotalItems())

	// Mutating the loaded copy must not affect the stored cart
	loaded.Clear()
	again, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.TotalItems())
}

func TestInMemoryCartStore_Delete(t *testing.T) {
	store := NewInMemoryCartStore()
	ctx := context.Background()

	c := cart.New()
	c.AddItem(cart.Item{Key: "p1:v1", Name: "x", Quantity: 1, Variant: cart.Variant{ImageURL: "u"}})
	require.NoError(t, store.Save(ctx, "session-1", c))
	require.NoError(t, store.Delete(ctx, "session-1"))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestInMemorySnapshotStore_PutGetDelete(t *testing.T) {
	store := NewInMemorySnapshotStore()
	defer store.Close()
	ctx := context.Background()

	snap := &checkout.PendingOrderSnapshot{
		Customer: checkout.CustomerInfo{Name: "Asha", Email: "asha@example.com", Phone: "919876543210"},
		Items:    []checkout.SnapshotItem{{VariantID: "v1", ProductName: "Millet Dosa Mix", Quantity: 2, UnitPrice: decimal.NewFromInt(250)}},
		Total:    decimal.NewFromInt(500),
		CartKey:  "session-1",
	}

	require.NoError(t, store.Put(ctx, "order_abc", snap, time.Minute))

	got, err := store.Get(ctx, "order_abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Asha", got.Customer.Name)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(500)))

	require.NoError(t, store.Delete(ctx, "order_abc"))
	got, err = store.Get(ctx, "order_abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemorySnapshotStore_ExpiredEntryIsAbsent(t *testing.T) {
	store := NewInMemorySnapshotStore()
	defer store.Close()
	ctx := context.Background()

	snap := &checkout.PendingOrderSnapshot{CartKey: "session-1"}
	require.NoError(t, store.Put(ctx, "order_abc", snap, 10*time.Millisecond))

	time.Sleep(20 * time.Millisecond)

	got, err := store.Get(ctx, "order_abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemorySnapshotStore_CleanupRemovesExpired(t *testing.T) {
	store := NewInMemorySnapshotStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", &checkout.PendingOrderSnapshot{}, 10*time.Millisecond))
	require.NoError(t, store.Put(ctx, "b", &checkout.PendingOrderSnapshot{}, time.Hour))

	time.Sleep(20 * time.Millisecond)
	store.cleanup()

	assert.Equal(t, 1, store.Size())
}
