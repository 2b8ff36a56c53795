package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	BaseModel
	CustomerName    string           `gorm:"type:varchar(200);not null"`
	CustomerEmail   string           `gorm:"type:varchar(254);not null"`
	CustomerPhone   string           `gorm:"type:varchar(20);not null"`
	Total           decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Status          string           `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus   string           `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentID       string           `gorm:"type:varchar(100)"`
	ProviderOrderID string           `gorm:"type:varchar(100);uniqueIndex:idx_orders_provider_order_id,where:provider_order_id <> ''"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.Item, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToDomain())
	}
	return &order.Order{
		BaseEntity:      m.BaseModel.ToDomain(),
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   m.CustomerPhone,
		Items:           items,
		Total:           m.Total,
		Status:          order.Status(m.Status),
		PaymentStatus:   order.PaymentStatus(m.PaymentStatus),
		PaymentID:       m.PaymentID,
		ProviderOrderID: m.ProviderOrderID,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerName = o.CustomerName
	m.CustomerEmail = o.CustomerEmail
	m.CustomerPhone = o.CustomerPhone
	m.Total = o.Total
	m.Status = o.Status.String()
	m.PaymentStatus = o.PaymentStatus.String()
	m.PaymentID = o.PaymentID
	m.ProviderOrderID = o.ProviderOrderID
	m.Items = make([]OrderItemModel, 0, len(o.Items))
	for i := range o.Items {
		im := OrderItemModel{}
		im.FromDomain(&o.Items[i])
		m.Items = append(m.Items, im)
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for an order line item.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID   string          `gorm:"type:varchar(100)"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain order Item.
func (m *OrderItemModel) ToDomain() *order.Item {
	return &order.Item{
		ID:          m.ID,
		OrderID:     m.OrderID,
		VariantID:   m.VariantID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain order Item.
func (m *OrderItemModel) FromDomain(i *order.Item) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.VariantID = i.VariantID
	m.ProductName = i.ProductName
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.CreatedAt = i.CreatedAt
}
