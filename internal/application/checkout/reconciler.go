package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// ReconcilerConfig tunes the payment-return workflow
type ReconcilerConfig struct {
	// FetchRetryAttempts is the total number of order-fetch attempts on
	// the cash-on-delivery return path, covering read lag after insert
	FetchRetryAttempts int
	// FetchRetryBaseDelay is the delay before the first retry; each
	// subsequent delay doubles
	FetchRetryBaseDelay time.Duration
}

// Reconciler resolves what actually happened after the browser returns
// from checkout. It trusts only server-side state - the durable store for
// cash on delivery, the payment provider for online payment - never the
// redirect parameters alone.
type Reconciler struct {
	carts     cart.Store
	orders    order.Repository
	gateway   checkout.PaymentGateway
	snapshots checkout.SnapshotStore
	cfg       ReconcilerConfig
	logger    *zap.Logger

	// sleep is injectable for tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewReconciler creates a new payment-return Reconciler
func NewReconciler(
	carts cart.Store,
	orders order.Repository,
	gateway checkout.PaymentGateway,
	snapshots checkout.SnapshotStore,
	cfg ReconcilerConfig,
	logger *zap.Logger,
) *Reconciler {
	if cfg.FetchRetryAttempts < 1 {
		cfg.FetchRetryAttempts = 4
	}
	if cfg.FetchRetryBaseDelay == 0 {
		cfg.FetchRetryBaseDelay = time.Second
	}
	return &Reconciler{
		carts:     carts,
		orders:    orders,
		gateway:   gateway,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    logger.Named("reconciler"),
		sleep:     sleepCtx,
	}
}

// Resolve reconciles a payment return. Exactly one of orderID (cash on
// delivery) or providerOrderID (online payment) must be set; anything
// else is a terminal error. sessionKey identifies the cart to clear on
// success.
func (r *Reconciler) Resolve(ctx context.Context, sessionKey, orderID, providerOrderID string) *Outcome {
	switch {
	case orderID != "" && providerOrderID != "":
		return terminalOutcome("INVALID_RETURN", "Conflicting payment return parameters", "")
	case orderID != "":
		return r.resolveCOD(ctx, sessionKey, orderID)
	case providerOrderID != "":
		return r.resolveOnline(ctx, sessionKey, providerOrderID)
	default:
		return terminalOutcome("INVALID_RETURN", "Missing payment return parameters", "")
	}
}

// resolveCOD fetches the freshly inserted order, retrying with bounded
// backoff to cover read lag. The cart is cleared only once the order is
// actually seen.
func (r *Reconciler) resolveCOD(ctx context.Context, sessionKey, orderID string) *Outcome {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return terminalOutcome("INVALID_RETURN", "Malformed order reference", orderID)
	}

	var o *order.Order
	for attempt := 1; attempt <= r.cfg.FetchRetryAttempts; attempt++ {
		o, err = r.orders.FindByID(ctx, id)
		if err == nil {
			break
		}
		if attempt == r.cfg.FetchRetryAttempts {
			r.logger.Error("cod order fetch exhausted retries",
				zap.String("order_id", orderID),
				zap.Int("attempts", attempt),
				zap.Error(err))
			return terminalOutcome("ORDER_NOT_FOUND", "We could not confirm your order", orderID)
		}

		delay := r.cfg.FetchRetryBaseDelay << (attempt - 1)
		r.logger.Warn("cod order fetch failed, retrying",
			zap.String("order_id", orderID),
			zap.Int("attempt", attempt),
			zap.Duration("next_delay", delay),
			zap.Error(err))
		if serr := r.sleep(ctx, delay); serr != nil {
			return terminalOutcome("ORDER_NOT_FOUND", "We could not confirm your order", orderID)
		}
	}

	if err := r.carts.Delete(ctx, sessionKey); err != nil {
		// The order is confirmed; a stale cart is an annoyance, not a failure
		r.logger.Warn("failed to clear cart after cod confirmation",
			zap.String("session", sessionKey), zap.Error(err))
	}

	return &Outcome{State: OutcomeSuccess, Order: ToOrderSummary(o)}
}

// resolveOnline verifies the payment with the provider and creates the
// durable order from the stashed snapshot. Creation is idempotent on the
// provider order token: a reloaded confirmation page finds the existing
// order instead of inserting a second one.
func (r *Reconciler) resolveOnline(ctx context.Context, sessionKey, providerOrderID string) *Outcome {
	// A replayed return for an already-created order short-circuits
	// before any provider call
	if existing, err := r.orders.FindByProviderOrderID(ctx, providerOrderID); err == nil {
		return &Outcome{State: OutcomeSuccess, Order: ToOrderSummary(existing)}
	}

	snap, err := r.snapshots.Get(ctx, providerOrderID)
	if err != nil {
		return terminalOutcome("VERIFICATION_FAILED", shared.ErrVerificationFailed.Message, providerOrderID)
	}
	if snap == nil {
		// Expired or foreign session: nothing to verify, and no provider
		// call is made
		return terminalOutcome("SESSION_EXPIRED", shared.ErrSessionExpired.Message, providerOrderID)
	}

	gwOrder, err := r.gateway.GetOrder(ctx, providerOrderID)
	if err != nil || !gwOrder.Status.IsPaid() || !gwOrder.Amount.Equal(snap.Total) {
		// Cart and snapshot are deliberately kept: support can still
		// reconcile manually with the correlation id
		switch {
		case err != nil:
			r.logger.Error("payment verification call failed",
				zap.String("provider_order_id", providerOrderID), zap.Error(err))
		case !gwOrder.Status.IsPaid():
			r.logger.Warn("payment not in paid state",
				zap.String("provider_order_id", providerOrderID),
				zap.String("status", string(gwOrder.Status)))
		default:
			r.logger.Warn("paid amount does not match pending order total",
				zap.String("provider_order_id", providerOrderID),
				zap.String("paid_amount", gwOrder.Amount.String()),
				zap.String("expected_total", snap.Total.String()))
		}
		return terminalOutcome("VERIFICATION_FAILED", shared.ErrVerificationFailed.Message, providerOrderID)
	}

	o, err := r.createFromSnapshot(ctx, snap, providerOrderID, gwOrder.PaymentID)
	if err != nil {
		// A concurrent return may have won the insert; the unique index
		// on the provider token makes the read authoritative
		if existing, ferr := r.orders.FindByProviderOrderID(ctx, providerOrderID); ferr == nil {
			o = existing
		} else {
			r.logger.Error("failed to create order after verified payment",
				zap.String("provider_order_id", providerOrderID), zap.Error(err))
			return terminalOutcome("VERIFICATION_FAILED", shared.ErrVerificationFailed.Message, providerOrderID)
		}
	}

	cartKey := snap.CartKey
	if cartKey == "" {
		cartKey = sessionKey
	}
	if cerr := r.carts.Delete(ctx, cartKey); cerr != nil {
		r.logger.Warn("failed to clear cart after payment confirmation",
			zap.String("session", cartKey), zap.Error(cerr))
	}
	if derr := r.snapshots.Delete(ctx, providerOrderID); derr != nil {
		r.logger.Warn("failed to delete pending snapshot",
			zap.String("provider_order_id", providerOrderID), zap.Error(derr))
	}

	r.logger.Info("online order confirmed",
		zap.String("order_id", o.ID.String()),
		zap.String("provider_order_id", providerOrderID))

	return &Outcome{State: OutcomeSuccess, Order: ToOrderSummary(o)}
}

// createFromSnapshot materializes the durable order from the stashed
// pending snapshot and marks it paid
func (r *Reconciler) createFromSnapshot(ctx context.Context, snap *checkout.PendingOrderSnapshot, providerOrderID, paymentID string) (*order.Order, error) {
	phone, err := valueobject.NewPhone(snap.Customer.Phone)
	if err != nil {
		return nil, err
	}
	o, err := order.New(snap.Customer.Name, snap.Customer.Email, phone)
	if err != nil {
		return nil, err
	}
	for _, item := range snap.Items {
		price := valueobject.NewMoneyINR(item.UnitPrice)
		if _, err := o.AddItem(item.VariantID, item.ProductName, item.Quantity, price); err != nil {
			return nil, err
		}
	}
	if err := o.MarkPaid(providerOrderID, paymentID); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := r.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// terminalOutcome builds the contact-support outcome with a correlation id
func terminalOutcome(code, message, correlationID string) *Outcome {
	return &Outcome{
		State:         OutcomeTerminalError,
		ErrorCode:     code,
		Message:       message,
		CorrelationID: correlationID,
	}
}

// sleepCtx sleeps for d unless the context is cancelled first
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
