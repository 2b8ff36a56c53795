package checkout

import (
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/order"
)

// PaymentMethod selects the fulfillment path for a submission
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "online"
)

// IsValid checks if the payment method is in the enumerated set
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

// SubmitRequest is the storefront payload starting an order submission
type SubmitRequest struct {
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerEmail string        `json:"customer_email" binding:"required,email"`
	CustomerPhone string        `json:"customer_phone" binding:"required,inphone"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required"`
}

// SubmitResponse is the outcome of a submission. For cash on delivery the
// order exists already and RedirectURL points at the confirmation page;
// for online payment the client hands PaymentSessionID to the provider's
// hosted checkout widget.
type SubmitResponse struct {
	PaymentMethod    PaymentMethod `json:"payment_method"`
	OrderID          string        `json:"order_id,omitempty"`
	ProviderOrderID  string        `json:"provider_order_id,omitempty"`
	PaymentSessionID string        `json:"payment_session_id,omitempty"`
	RedirectURL      string        `json:"redirect_url,omitempty"`
}

// OutcomeState is the terminal state of a payment-return reconciliation
type OutcomeState string

const (
	OutcomeSuccess       OutcomeState = "success"
	OutcomeTerminalError OutcomeState = "terminal_error"
)

// Outcome is what the confirmation page renders after the browser returns
// from checkout. A terminal error is final for this attempt: the shopper
// is told to contact support with the correlation ID, and their cart is
// left intact so nothing paid-for or selected is lost.
type Outcome struct {
	State         OutcomeState  `json:"state"`
	Order         *OrderSummary `json:"order,omitempty"`
	ErrorCode     string        `json:"error_code,omitempty"`
	Message       string        `json:"message,omitempty"`
	CorrelationID string        `json:"correlation_id,omitempty"`
}

// OrderSummary is the confirmation-page view of a placed order
type OrderSummary struct {
	OrderID       string             `json:"order_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []OrderItemSummary `json:"items"`
	Total         string             `json:"total"`
	DisplayTotal  string             `json:"display_total"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
}

// OrderItemSummary is one confirmed line item
type OrderItemSummary struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// ToOrderSummary maps a domain order to its confirmation view
func ToOrderSummary(o *order.Order) *OrderSummary {
	items := make([]OrderItemSummary, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemSummary{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			LineTotal:   item.LineTotal().StringFixed(2),
		})
	}
	return &OrderSummary{
		OrderID:       o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		Total:         o.Total.StringFixed(2),
		DisplayTotal:  catalogapp.FormatINR(o.Total),
		Status:        o.Status.String(),
		PaymentStatus: o.PaymentStatus.String(),
	}
}
