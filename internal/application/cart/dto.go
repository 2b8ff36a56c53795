package cart

import (
	"github.com/shopspring/decimal"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/cart"
)

// AddItemRequest asks for a variant to be added to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	VariantID string `json:"variant_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity of an existing cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ItemResponse is the wire representation of one cart line
type ItemResponse struct {
	Key          string `json:"key"`
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	VariantID    string `json:"variant_id"`
	Size         string `json:"size"`
	ImageURL     string `json:"image_url"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	LineTotal    string `json:"line_total"`
	DisplayPrice string `json:"display_price"`
}

// Response is the wire representation of the whole cart
type Response struct {
	Items        []ItemResponse `json:"items"`
	TotalItems   int            `json:"total_items"`
	TotalPrice   string         `json:"total_price"`
	DisplayTotal string         `json:"display_total"`
}

// ToResponse maps a cart to its wire form. Only well-formed lines are
// rendered and summed; stale lines from older stored formats are dropped
// silently, so the displayed total matches what checkout will charge.
func ToResponse(c *cart.Cart) *Response {
	valid := c.ValidItems()
	items := make([]ItemResponse, 0, len(valid))
	totalItems := 0
	total := decimal.Zero
	for _, item := range valid {
		totalItems += item.Quantity
		total = total.Add(item.LineTotal())
		items = append(items, ItemResponse{
			Key:          item.Key,
			ProductID:    item.ProductID,
			Name:         item.Name,
			VariantID:    item.Variant.ID,
			Size:         item.Variant.Size,
			ImageURL:     item.Variant.ImageURL,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.StringFixed(2),
			LineTotal:    item.LineTotal().StringFixed(2),
			DisplayPrice: catalogapp.FormatINR(item.UnitPrice),
		})
	}

	return &Response{
		Items:        items,
		TotalItems:   totalItems,
		TotalPrice:   total.StringFixed(2),
		DisplayTotal: catalogapp.FormatINR(total),
	}
}
