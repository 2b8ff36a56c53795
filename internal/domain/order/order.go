package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// Status represents the fulfillment status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled || target == StatusFailed
	case StatusConfirmed:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled, StatusFailed:
		return false // Terminal states
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the payment status is in the enumerated set
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// Item represents a line item captured on a durable order
type Item struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	VariantID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
}

// NewItem creates a new order item
func NewItem(orderID uuid.UUID, variantID, productName string, quantity int, unitPrice valueobject.Money) (*Item, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	return &Item{
		ID:          uuid.New(),
		OrderID:     orderID,
		VariantID:   variantID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		CreatedAt:   time.Now(),
	}, nil
}

// LineTotal returns unit price times quantity for this item
func (i *Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the durable record of a placed order. It is created either by
// a direct insert (cash-on-delivery) or after server-side payment
// verification (online payment), and afterwards mutated only by admin
// status updates. The client never deletes it.
type Order struct {
	shared.BaseEntity
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string // normalized, carries the 91 prefix
	Items           []Item
	Total           decimal.Decimal
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentID       string // gateway transaction reference, online orders only
	ProviderOrderID string // gateway order token, online orders only
}

// New creates a new pending order from validated customer info
func New(customerName, customerEmail string, customerPhone valueobject.Phone) (*Order, error) {
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if customerEmail == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_EMAIL", "Customer email cannot be empty")
	}
	if customerPhone.IsZero() {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone cannot be empty")
	}

	return &Order{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		CustomerPhone: customerPhone.String(),
		Items:         make([]Item, 0),
		Total:         decimal.Zero,
		Status:        StatusPending,
		PaymentStatus: PaymentStatusPending,
	}, nil
}

// AddItem appends a line item and recalculates the total
func (o *Order) AddItem(variantID, productName string, quantity int, unitPrice valueobject.Money) (*Item, error) {
	item, err := NewItem(o.ID, variantID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.Touch()
	return &o.Items[len(o.Items)-1], nil
}

// recalculateTotal sums all line totals
func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.Total = total
}

// Validate enforces the storage-boundary invariants: at least one item,
// positive total, valid status enums.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if !o.Total.IsPositive() {
		return shared.NewDomainError("INVALID_TOTAL", "Order total must be positive")
	}
	if !o.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.PaymentStatus.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_STATUS", "Unknown payment status")
	}
	return nil
}

// MarkPaid records a successful online payment on the order
func (o *Order) MarkPaid(providerOrderID, paymentID string) error {
	if o.PaymentStatus == PaymentStatusRefunded {
		return shared.ErrInvalidState
	}
	o.PaymentStatus = PaymentStatusPaid
	o.ProviderOrderID = providerOrderID
	o.PaymentID = paymentID
	if o.Status == StatusPending {
		o.Status = StatusConfirmed
	}
	o.Touch()
	return nil
}

// UpdateStatus transitions the fulfillment status, enforcing the allowed
// transition graph
func (o *Order) UpdateStatus(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}
	o.Status = target
	o.Touch()
	return nil
}

// TotalMoney returns the total as a Money value object
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(o.Total)
}
