package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Variant describes the purchasable size/SKU a cart line points at.
// The unit price and image are snapshotted at the time of adding so a
// later catalog change does not silently reprice the cart.
type Variant struct {
	ID       string          `json:"id"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

// Item is a single cart line, addressed by the composite product+variant key
type Item struct {
	Key       string          `json:"key"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Variant   Variant         `json:"variant"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CompositeKey builds the cart line key for a product/variant pair
func CompositeKey(productID, variantID string) string {
	return fmt.Sprintf("%s:%s", productID, variantID)
}

// IsValid reports whether a stored line is well-formed. Lines persisted
// under an older cart schema can miss fields after a format migration;
// such lines must be filterable out before rendering or summing.
func (i Item) IsValid() bool {
	if i.Key == "" || i.Name == "" {
		return false
	}
	if i.Quantity < 1 {
		return false
	}
	if i.Variant.ImageURL == "" {
		return false
	}
	return true
}

// LineTotal returns unit price times quantity for this line
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds the lines a shopper has selected. It is the source of truth
// for what an order will contain until submission.
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart
func New() *Cart {
	return &Cart{Items: make([]Item, 0)}
}

// AddItem merges the given line into the cart. If a line with the same
// composite key exists its quantity is incremented by the given amount;
// otherwise a new line is appended. A quantity below 1 defaults to 1.
func (c *Cart) AddItem(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for idx := range c.Items {
		if c.Items[idx].Key == item.Key {
			c.Items[idx].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line with the given composite key; no-op if absent
func (c *Cart) RemoveItem(key string) {
	for idx := range c.Items {
		if c.Items[idx].Key == key {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line entirely; a line is never stored with quantity zero.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(key)
		return
	}
	for idx := range c.Items {
		if c.Items[idx].Key == key {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// Clear empties all lines
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems returns the sum of quantities across all lines
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of (unit price x quantity) across all lines
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ValidItems returns only well-formed lines, in order
func (c *Cart) ValidItems() []Item {
	valid := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		if item.IsValid() {
			valid = append(valid, item)
		}
	}
	return valid
}
