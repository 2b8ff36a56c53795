package order

import (
	"github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/order"
)

// ListRequest narrows and pages the admin order listing
type ListRequest struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	Page          int    `form:"page"`
	PageSize      int    `form:"page_size"`
}

// UpdateStatusRequest moves an order along the fulfillment graph
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ItemResponse is one line item of an order
type ItemResponse struct {
	ID          string `json:"id"`
	VariantID   string `json:"variant_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// Response is the admin view of an order
type Response struct {
	ID              string         `json:"id"`
	CustomerName    string         `json:"customer_name"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone"`
	Items           []ItemResponse `json:"items"`
	Total           string         `json:"total"`
	DisplayTotal    string         `json:"display_total"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"payment_status"`
	PaymentID       string         `json:"payment_id,omitempty"`
	ProviderOrderID string         `json:"provider_order_id,omitempty"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

// ListResponse pages the admin order listing
type ListResponse struct {
	Orders   []Response `json:"orders"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// ToResponse maps a domain order to its admin view
func ToResponse(o *order.Order) Response {
	items := make([]ItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemResponse{
			ID:          item.ID.String(),
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			LineTotal:   item.LineTotal().StringFixed(2),
		})
	}
	return Response{
		ID:              o.ID.String(),
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		Items:           items,
		Total:           o.Total.StringFixed(2),
		DisplayTotal:    catalog.FormatINR(o.Total),
		Status:          o.Status.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		PaymentID:       o.PaymentID,
		ProviderOrderID: o.ProviderOrderID,
		CreatedAt:       o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       o.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
