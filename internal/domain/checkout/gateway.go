package checkout

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Gateway errors surfaced by payment adapters
var (
	ErrGatewayRequestFailed = errors.New("payment gateway: request failed")
	ErrGatewayOrderNotFound = errors.New("payment gateway: order not found")
	ErrGatewayNotConfigured = errors.New("payment gateway: mode not configured")
)

// GatewayPaymentStatus is the provider-side payment state of an order
type GatewayPaymentStatus string

const (
	GatewayPaymentStatusActive     GatewayPaymentStatus = "ACTIVE"
	GatewayPaymentStatusPaid       GatewayPaymentStatus = "PAID"
	GatewayPaymentStatusExpired    GatewayPaymentStatus = "EXPIRED"
	GatewayPaymentStatusTerminated GatewayPaymentStatus = "TERMINATED"
)

// IsPaid reports whether the provider considers the order paid
func (s GatewayPaymentStatus) IsPaid() bool {
	return s == GatewayPaymentStatusPaid
}

// CreateGatewayOrderRequest asks the provider to open a checkout attempt
type CreateGatewayOrderRequest struct {
	Amount    decimal.Decimal
	Currency  string
	Customer  CustomerInfo
	ReturnURL string
}

// Validate checks the request before it reaches the wire
func (r *CreateGatewayOrderRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return errors.New("payment gateway: amount must be positive")
	}
	if r.Customer.Phone == "" {
		return errors.New("payment gateway: customer phone is required")
	}
	return nil
}

// CreateGatewayOrderResponse carries the provider's correlation token and
// the session token the hosted checkout widget needs
type CreateGatewayOrderResponse struct {
	OrderID          string // provider order token
	PaymentSessionID string
	RawResponse      string
}

// GatewayOrder is the provider's view of a checkout attempt, fetched
// during server-side verification
type GatewayOrder struct {
	OrderID     string
	Status      GatewayPaymentStatus
	Amount      decimal.Decimal
	Currency    string
	PaymentID   string // provider transaction reference, set once paid
	RawResponse string
}

// PaymentGateway is the integration contract with the hosted payment
// provider. Only order creation and status lookup are in scope; the
// provider's own checkout UI and risk logic are external.
type PaymentGateway interface {
	// CreateOrder opens a checkout attempt for the given amount and
	// customer, yielding the provider order token and session token
	CreateOrder(ctx context.Context, req *CreateGatewayOrderRequest) (*CreateGatewayOrderResponse, error)

	// GetOrder fetches the provider-side state of a checkout attempt.
	// Used to verify a payment server-side before creating the durable
	// order; client-reported success is never trusted on its own.
	GetOrder(ctx context.Context, providerOrderID string) (*GatewayOrder, error)
}
