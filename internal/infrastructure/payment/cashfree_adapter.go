package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/checkout"
)

// CashfreeAdapter implements the PaymentGateway interface for Cashfree PG.
// The hosted checkout UI itself runs on the provider side; this adapter
// only opens orders and verifies their status server-side.
type CashfreeAdapter struct {
	config     *CashfreeConfig
	httpClient *http.Client
	baseURL    string
}

// NewCashfreeAdapter creates a new Cashfree adapter
func NewCashfreeAdapter(config *CashfreeConfig) (*CashfreeAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &CashfreeAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: config.BaseURL(),
	}, nil
}

// NewCashfreeAdapterWithBaseURL creates an adapter pointed at a custom base
// URL. Used in tests against a local HTTP server.
func NewCashfreeAdapterWithBaseURL(config *CashfreeConfig, baseURL string, client *http.Client) (*CashfreeAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CashfreeAdapter{config: config, httpClient: client, baseURL: baseURL}, nil
}

// CreateOrder opens a Cashfree order and returns the provider order token
// and the payment session token the hosted checkout widget consumes
func (a *CashfreeAdapter) CreateOrder(ctx context.Context, req *checkout.CreateGatewayOrderRequest) (*checkout.CreateGatewayOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	body := cashfreeCreateOrderRequest{
		OrderAmount:   req.Amount.StringFixed(2),
		OrderCurrency: currency,
		CustomerDetails: cashfreeCustomerDetails{
			CustomerID:    uuid.New().String(),
			CustomerName:  req.Customer.Name,
			CustomerEmail: req.Customer.Email,
			CustomerPhone: req.Customer.Phone,
		},
	}
	if req.ReturnURL != "" {
		body.OrderMeta = &cashfreeOrderMeta{ReturnURL: req.ReturnURL}
	}

	respBody, err := a.doRequest(ctx, http.MethodPost, "/orders", body)
	if err != nil {
		return nil, err
	}

	var orderResp cashfreeOrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, fmt.Errorf("cashfree: failed to parse create order response: %w", err)
	}
	if orderResp.OrderID == "" || orderResp.PaymentSessionID == "" {
		return nil, fmt.Errorf("%w: create order response missing order_id or payment_session_id", checkout.ErrGatewayRequestFailed)
	}

	return &checkout.CreateGatewayOrderResponse{
		OrderID:          orderResp.OrderID,
		PaymentSessionID: orderResp.PaymentSessionID,
		RawResponse:      string(respBody),
	}, nil
}

// GetOrder fetches the provider-side state of an order. When the order is
// paid the successful payment's transaction reference is resolved as well.
func (a *CashfreeAdapter) GetOrder(ctx context.Context, providerOrderID string) (*checkout.GatewayOrder, error) {
	if providerOrderID == "" {
		return nil, fmt.Errorf("cashfree: order id is required")
	}

	respBody, err := a.doRequest(ctx, http.MethodGet, "/orders/"+providerOrderID, nil)
	if err != nil {
		return nil, err
	}

	var orderResp cashfreeOrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, fmt.Errorf("cashfree: failed to parse order response: %w", err)
	}

	order := &checkout.GatewayOrder{
		OrderID:     orderResp.OrderID,
		Status:      checkout.GatewayPaymentStatus(orderResp.OrderStatus),
		Currency:    orderResp.OrderCurrency,
		Amount:      parseProviderAmount(orderResp.OrderAmount),
		RawResponse: string(respBody),
	}

	if order.Status.IsPaid() {
		if paymentID, err := a.fetchSuccessfulPaymentID(ctx, providerOrderID); err == nil {
			order.PaymentID = paymentID
		}
		// A missing payment reference does not invalidate a PAID order
	}

	return order, nil
}

// fetchSuccessfulPaymentID looks up the transaction reference of the
// successful payment attempt for an order
func (a *CashfreeAdapter) fetchSuccessfulPaymentID(ctx context.Context, providerOrderID string) (string, error) {
	respBody, err := a.doRequest(ctx, http.MethodGet, "/orders/"+providerOrderID+"/payments", nil)
	if err != nil {
		return "", err
	}

	var payments []cashfreePayment
	if err := json.Unmarshal(respBody, &payments); err != nil {
		return "", fmt.Errorf("cashfree: failed to parse payments response: %w", err)
	}

	for _, p := range payments {
		if p.PaymentStatus == "SUCCESS" {
			return fmt.Sprint(p.CfPaymentID), nil
		}
	}
	return "", fmt.Errorf("cashfree: no successful payment for order %s", providerOrderID)
}

// doRequest performs an authenticated HTTP request against the Cashfree API
func (a *CashfreeAdapter) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cashfree: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("cashfree: failed to create request: %w", err)
	}

	req.Header.Set("x-client-id", a.config.AppID)
	req.Header.Set("x-client-secret", a.config.SecretKey)
	req.Header.Set("x-api-version", cashfreeAPIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrGatewayRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cashfree: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, checkout.ErrGatewayOrderNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr cashfreeErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: HTTP %d: %s", checkout.ErrGatewayRequestFailed, resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", checkout.ErrGatewayRequestFailed, resp.StatusCode)
	}

	return respBody, nil
}

// parseProviderAmount parses the numeric-or-string amount the provider
// returns depending on API version
func parseProviderAmount(v any) decimal.Decimal {
	switch amount := v.(type) {
	case float64:
		return decimal.NewFromFloat(amount)
	case string:
		if d, err := decimal.NewFromString(amount); err == nil {
			return d
		}
	}
	return decimal.Zero
}

var _ checkout.PaymentGateway = (*CashfreeAdapter)(nil)
