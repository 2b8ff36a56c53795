package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	phone, err := valueobject.NewPhone("9876543210")
	require.NoError(t, err)
	o, err := order.New("Asha", "asha@example.com", phone)
	require.NoError(t, err)
	_, err = o.AddItem("v1", "Millet Dosa Mix", 2, valueobject.NewMoneyINR(decimal.NewFromInt(250)))
	require.NoError(t, err)
	return o
}

func pendingSnapshot() *checkout.PendingOrderSnapshot {
	return &checkout.PendingOrderSnapshot{
		Customer: checkout.CustomerInfo{Name: "Asha", Email: "asha@example.com", Phone: "919876543210"},
		Items: []checkout.SnapshotItem{
			{VariantID: "v1", ProductName: "Millet Dosa Mix", Quantity: 2, UnitPrice: decimal.NewFromInt(250)},
		},
		Total:   decimal.NewFromInt(500),
		CartKey: "session-1",
	}
}

// newTestReconciler builds a reconciler with an instant sleep that records
// the requested delays
func newTestReconciler(carts *memCartStore, orders order.Repository, gw checkout.PaymentGateway, snaps checkout.SnapshotStore) (*Reconciler, *[]time.Duration) {
	r := NewReconciler(carts, orders, gw, snaps, ReconcilerConfig{
		FetchRetryAttempts:  4,
		FetchRetryBaseDelay: time.Second,
	}, zap.NewNop())

	delays := &[]time.Duration{}
	r.sleep = func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
	return r, delays
}

func TestReconciler_Resolve_CODHappyPath(t *testing.T) {
	carts := newMemCartStore()
	seededCart(t, carts, "session-1")

	o := placedOrder(t)
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	r, delays := newTestReconciler(carts, orders, new(MockPaymentGateway), newMemSnapshotStore())

	outcome := r.Resolve(context.Background(), "session-1", o.ID.String(), "")

	assert.Equal(t, OutcomeSuccess, outcome.State)
	require.NotNil(t, outcome.Order)
	assert.Equal(t, "500.00", outcome.Order.Total)
	require.Len(t, outcome.Order.Items, 1)
	assert.Equal(t, 2, outcome.Order.Items[0].Quantity)
	assert.Empty(t, *delays)
	assert.False(t, carts.has("session-1"), "cart should be cleared after confirmation")
}

func TestReconciler_Resolve_CODFetchLag(t *testing.T) {
	carts := newMemCartStore()
	seededCart(t, carts, "session-1")

	o := placedOrder(t)
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, o.ID).Return(nil, shared.ErrNotFound).Times(3)
	orders.On("FindByID", mock.Anything, o.ID).Return(o, nil).Once()

	r, delays := newTestReconciler(carts, orders, new(MockPaymentGateway), newMemSnapshotStore())

	outcome := r.Resolve(context.Background(), "session-1", o.ID.String(), "")

	assert.Equal(t, OutcomeSuccess, outcome.State)
	orders.AssertNumberOfCalls(t, "FindByID", 4)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, *delays)
	assert.False(t, carts.has("session-1"))
}

func TestReconciler_Resolve_CODExhaustedRetries(t *testing.T) {
	carts := newMemCartStore()
	seededCart(t, carts, "session-1")

	o := placedOrder(t)
	orders := new(MockOrderRepository)
	orders.On("FindByID", mock.Anything, o.ID).Return(nil, shared.ErrNotFound)

	r, _ := newTestReconciler(carts, orders, new(MockPaymentGateway), newMemSnapshotStore())

	outcome := r.Resolve(context.Background(), "session-1", o.ID.String(), "")

	assert.Equal(t, OutcomeTerminalError, outcome.State)
	assert.Equal(t, "ORDER_NOT_FOUND", outcome.ErrorCode)
	assert.Equal(t, o.ID.String(), outcome.CorrelationID)
	orders.AssertNumberOfCalls(t, "FindByID", 4)
	assert.True(t, carts.has("session-1"), "cart must be kept on terminal failure")
}

func TestReconciler_Resolve_OnlineHappyPath(t *testing.T) {
	carts := newMemCartStore()
	seededCart(t, carts, "session-1")
	snaps := newMemSnapshotStore()
	require.NoError(t, snaps.Put(context.Background(), "order_abc123", pendingSnapshot(), time.Minute))

	gw := new(MockPaymentGateway)
	gw.On("GetOrder", mock.Anything, "order_abc123").Return(&checkout.GatewayOrder{
		OrderID:   "order_abc123",
		Status:    checkout.GatewayPaymentStatusPaid,
		Amount:    decimal.NewFromInt(500),
		PaymentID: "987654",
	}, nil)

	orders := new(MockOrderRepository)
	orders.On("FindByProviderOrderID", mock.Anything, "order_abc123").Return(nil, shared.ErrNotFound).Once()
	var saved *order.Order
	orders.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil)

	r, _ := newTestReconciler(carts, orders, gw, snaps)

	outcome := r.Resolve(context.Background(), "session-1", "", "order_abc123")

	assert.Equal(t, OutcomeSuccess, outcome.State)
	require.NotNil(t, saved)
	assert.Equal(t, order.PaymentStatusPaid, saved.PaymentStatus)
	assert.Equal(t, order.StatusConfirmed, saved.Status)
	assert.Equal(t, "order_abc123", saved.ProviderOrderID)
	assert.Equal(t, "987654", saved.PaymentID)
	assert.False(t, carts.has("session-1"))
	assert.False(t, snaps.has("order_abc123"))
}

func TestReconciler_Resolve_OnlineReplayIsIdempotent(t *testing.T) {
	carts := newMemCartStore()
	existing := placedOrder(t)

	orders := new(MockOrderRepository)
	orders.On("FindByProviderOrderID", mock.Anything, "order_abc123").Return(existing, nil)

	gw := new(MockPaymentGateway)
	r, _ := newTestReconciler(carts, orders, gw, newMemSnapshotStore())

	outcome := r.Resolve(context.Background(), "session-1", "", "order_abc123")

	assert.Equal(t, OutcomeSuccess, outcome.State)
	assert.Equal(t, existing.ID.String(), outcome.Order.OrderID)
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestReconciler_Resolve_OnlineVerificationFailure(t *testing.T) {
	carts := newMemCartStore()
	seededCart(t, carts, "session-1")
	snaps := newMemSnapshotStore()
	require.NoError(t, snaps.Put(context.Background(), "order_abc123", pendingSnapshot(), time.Minute))

	gw := new(MockPaymentGateway)
	gw.On("GetOrder", mock.Anything, "order_abc123").Return(&checkout.GatewayOrder{
		OrderID: "order_abc123",
		Status:  checkout.GatewayPaymentStatusExpired,
	}, nil)

	orders := new(MockOrderRepository)
	orders.On("FindByProviderOrderID", mock.Anything, "order_abc123").Return(nil, shared.ErrNotFound)

	r, _ := newTestReconciler(carts, orders, gw, snaps)

	outcome := r.Resolve(context.Background(), "session-1", "", "order_abc123")

	assert.Equal(t, OutcomeTerminalError, outcome.State)
	assert.Equal(t, "VERIFICATION_FAILED", outcome.ErrorCode)
	assert.Equal(t, "order_abc123", outcome.CorrelationID)
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	// Cart and snapshot survive for manual reconciliation
	assert.True(t, carts.has("session-1"))
	assert.True(t, snaps.has("order_abc123"))
}

func TestReconciler_Resolve_OnlineAmountMismatch(t *testing.T) {
	carts := newMemCartStore()
	seededCart(t, carts, "session-1")
	snaps := newMemSnapshotStore()
	require.NoError(t, snaps.Put(context.Background(), "order_abc123", pendingSnapshot(), time.Minute))

	// Paid, but for less than the stashed total
	gw := new(MockPaymentGateway)
	gw.On("GetOrder", mock.Anything, "order_abc123").Return(&checkout.GatewayOrder{
		OrderID:   "order_abc123",
		Status:    checkout.GatewayPaymentStatusPaid,
		Amount:    decimal.NewFromInt(1),
		PaymentID: "987654",
	}, nil)

	orders := new(MockOrderRepository)
	orders.On("FindByProviderOrderID", mock.Anything, "order_abc123").Return(nil, shared.ErrNotFound)

	r, _ := newTestReconciler(carts, orders, gw, snaps)

	outcome := r.Resolve(context.Background(), "session-1", "", "order_abc123")

	assert.Equal(t, OutcomeTerminalError, outcome.State)
	assert.Equal(t, "VERIFICATION_FAILED", outcome.ErrorCode)
	assert.Equal(t, "order_abc123", outcome.CorrelationID)
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.True(t, carts.has("session-1"))
	assert.True(t, snaps.has("order_abc123"))
}

func TestReconciler_Resolve_OnlineExpiredSession(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("FindByProviderOrderID", mock.Anything, "order_abc123").Return(nil, shared.ErrNotFound)

	gw := new(MockPaymentGateway)
	r, _ := newTestReconciler(newMemCartStore(), orders, gw, newMemSnapshotStore())

	outcome := r.Resolve(context.Background(), "session-1", "", "order_abc123")

	assert.Equal(t, OutcomeTerminalError, outcome.State)
	assert.Equal(t, "SESSION_EXPIRED", outcome.ErrorCode)
	// Without a snapshot there is nothing to verify: no provider call
	gw.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestReconciler_Resolve_ParamValidation(t *testing.T) {
	r, _ := newTestReconciler(newMemCartStore(), new(MockOrderRepository), new(MockPaymentGateway), newMemSnapshotStore())

	t.Run("both params present", func(t *testing.T) {
		outcome := r.Resolve(context.Background(), "session-1", "some-id", "order_abc123")
		assert.Equal(t, OutcomeTerminalError, outcome.State)
		assert.Equal(t, "INVALID_RETURN", outcome.ErrorCode)
	})

	t.Run("no params present", func(t *testing.T) {
		outcome := r.Resolve(context.Background(), "session-1", "", "")
		assert.Equal(t, OutcomeTerminalError, outcome.State)
		assert.Equal(t, "INVALID_RETURN", outcome.ErrorCode)
	})

	t.Run("malformed order id", func(t *testing.T) {
		outcome := r.Resolve(context.Background(), "session-1", "not-a-uuid", "")
		assert.Equal(t, OutcomeTerminalError, outcome.State)
		assert.Equal(t, "INVALID_RETURN", outcome.ErrorCode)
	})
}
