package payment

// Request/response types for the Cashfree PG REST API.
// Field names follow the provider's wire format exactly.

type cashfreeCustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

type cashfreeOrderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
}

type cashfreeCreateOrderRequest struct {
	OrderAmount     string                  `json:"order_amount"`
	OrderCurrency   string                  `json:"order_currency"`
	CustomerDetails cashfreeCustomerDetails `json:"customer_details"`
	OrderMeta       *cashfreeOrderMeta      `json:"order_meta,omitempty"`
}

type cashfreeOrderResponse struct {
	CfOrderID        string `json:"cf_order_id"`
	OrderID          string `json:"order_id"`
	OrderAmount      any    `json:"order_amount"` // provider returns a JSON number
	OrderCurrency    string `json:"order_currency"`
	OrderStatus      string `json:"order_status"`
	PaymentSessionID string `json:"payment_session_id"`
}

type cashfreePayment struct {
	CfPaymentID   any    `json:"cf_payment_id"` // number in some API versions, string in others
	PaymentStatus string `json:"payment_status"`
	PaymentAmount any    `json:"payment_amount"`
}

type cashfreeErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}
