package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CoordinatorConfig tunes the submission workflow
type CoordinatorConfig struct {
	// ReturnURL is the absolute URL the payment provider redirects back to
	ReturnURL string
	// SnapshotTTL bounds how long a stashed pending order survives
	SnapshotTTL time.Duration
	// PaymentConfigured gates the online path; when false, online
	// submissions fail fast with a configuration error
	PaymentConfigured bool
}

// Coordinator drives order submission. It owns the single-flight guard:
// only one submission per cart session may be in flight at a time, so a
// double-clicked submit button cannot place two orders.
type Coordinator struct {
	carts     cart.Store
	orders    order.Repository
	gateway   checkout.PaymentGateway
	snapshots checkout.SnapshotStore
	cfg       CoordinatorConfig
	logger    *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewCoordinator creates a new submission Coordinator
func NewCoordinator(
	carts cart.Store,
	orders order.Repository,
	gateway checkout.PaymentGateway,
	snapshots checkout.SnapshotStore,
	cfg CoordinatorConfig,
	logger *zap.Logger,
) *Coordinator {
	if cfg.SnapshotTTL == 0 {
		cfg.SnapshotTTL = 30 * time.Minute
	}
	return &Coordinator{
		carts:     carts,
		orders:    orders,
		gateway:   gateway,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    logger.Named("checkout"),
		inFlight:  make(map[string]struct{}),
	}
}

// Submit places an order from the session's cart. Cash on delivery writes
// the durable order immediately; online payment opens a provider order and
// stashes a pending snapshot for the return-path reconciler. In both paths
// the cart is left untouched here - it is only cleared once the outcome
// is confirmed on the return path.
func (c *Coordinator) Submit(ctx context.Context, sessionKey string, req SubmitRequest) (*SubmitResponse, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be cod or online")
	}

	if !c.acquire(sessionKey) {
		return nil, shared.ErrSubmissionInFlight
	}
	defer c.release(sessionKey)

	phone, err := valueobject.NewPhone(req.CustomerPhone)
	if err != nil {
		return nil, err
	}
	customer := checkout.CustomerInfo{
		Name:  req.CustomerName,
		Email: req.CustomerEmail,
		Phone: phone.String(),
	}

	loaded, err := c.carts.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	items := loaded.ValidItems()
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	switch req.PaymentMethod {
	case PaymentMethodCOD:
		return c.submitCOD(ctx, customer, phone, items)
	default:
		return c.submitOnline(ctx, sessionKey, customer, items)
	}
}

// submitCOD creates the durable order directly and points the client at
// the confirmation page
func (c *Coordinator) submitCOD(ctx context.Context, customer checkout.CustomerInfo, phone valueobject.Phone, items []cart.Item) (*SubmitResponse, error) {
	o, err := order.New(customer.Name, customer.Email, phone)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		price := valueobject.NewMoneyINR(item.UnitPrice)
		if _, err := o.AddItem(item.Variant.ID, item.Name, item.Quantity, price); err != nil {
			return nil, err
		}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := c.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	c.logger.Info("cod order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("total", o.Total.StringFixed(2)))

	return &SubmitResponse{
		PaymentMethod: PaymentMethodCOD,
		OrderID:       o.ID.String(),
		RedirectURL:   fmt.Sprintf("%s?orderId=%s", c.cfg.ReturnURL, o.ID),
	}, nil
}

// submitOnline opens a provider order and stashes the pending snapshot
// BEFORE handing the session token to the client, so the return path can
// always reconstruct the order
func (c *Coordinator) submitOnline(ctx context.Context, sessionKey string, customer checkout.CustomerInfo, items []cart.Item) (*SubmitResponse, error) {
	if !c.cfg.PaymentConfigured {
		return nil, shared.ErrConfiguration
	}

	total := cart.New()
	total.Items = items

	gwResp, err := c.gateway.CreateOrder(ctx, &checkout.CreateGatewayOrderRequest{
		Amount:    total.TotalPrice(),
		Currency:  "INR",
		Customer:  customer,
		ReturnURL: fmt.Sprintf("%s?cf_order_id={order_id}", c.cfg.ReturnURL),
	})
	if err != nil {
		return nil, err
	}

	snap := &checkout.PendingOrderSnapshot{
		Customer: customer,
		Items:    make([]checkout.SnapshotItem, 0, len(items)),
		Total:    total.TotalPrice(),
		CartKey:  sessionKey,
	}
	for _, item := range items {
		snap.Items = append(snap.Items, checkout.SnapshotItem{
			VariantID:   item.Variant.ID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	if err := c.snapshots.Put(ctx, gwResp.OrderID, snap, c.cfg.SnapshotTTL); err != nil {
		return nil, err
	}

	c.logger.Info("online checkout opened",
		zap.String("provider_order_id", gwResp.OrderID),
		zap.String("total", snap.Total.StringFixed(2)))

	return &SubmitResponse{
		PaymentMethod:    PaymentMethodOnline,
		ProviderOrderID:  gwResp.OrderID,
		PaymentSessionID: gwResp.PaymentSessionID,
	}, nil
}

// acquire marks the session as having a submission in flight
func (c *Coordinator) acquire(sessionKey string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[sessionKey]; busy {
		return false
	}
	c.inFlight[sessionKey] = struct{}{}
	return true
}

// release clears the in-flight mark for the session
func (c *Coordinator) release(sessionKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, sessionKey)
}
