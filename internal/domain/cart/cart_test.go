package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testItem(productID, variantID string, qty int, price string) Item {
	p, _ := decimal.NewFromString(price)
	return Item{
		Key:       CompositeKey(productID, variantID),
		ProductID: productID,
		Name:      "Pure Ghee",
		Variant: Variant{
			ID:       variantID,
			Size:     "500ml",
			Price:    p,
			ImageURL: "https://cdn.example.com/ghee-500.jpg",
		},
		Quantity:  qty,
		UnitPrice: p,
	}
}

func TestAddItem_NewLine(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 2, "250.00"))

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddItem_MergesOnCompositeKey(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 1, "250.00"))
	c.AddItem(testItem("p1", "v1", 3, "250.00"))

	assert.Len(t, c.Items, 1, "same composite key must not create a duplicate line")
	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestAddItem_DifferentVariantsAreSeparateLines(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 1, "250.00"))
	c.AddItem(testItem("p1", "v2", 1, "450.00"))

	assert.Len(t, c.Items, 2)
}

func TestAddItem_QuantityDefaultsToOne(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 0, "250.00"))

	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 1, "250.00"))
	c.RemoveItem(CompositeKey("p1", "v1"))

	assert.True(t, c.IsEmpty())
}

func TestRemoveItem_AbsentKeyIsNoop(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 1, "250.00"))
	c.RemoveItem("p9:v9")

	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 1, "250.00"))
	c.UpdateQuantity(CompositeKey("p1", "v1"), 5)

	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 3, "250.00"))
	c.UpdateQuantity(CompositeKey("p1", "v1"), 0)

	assert.True(t, c.IsEmpty(), "quantity 0 must remove the line, never store it")
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 3, "250.00"))
	c.UpdateQuantity(CompositeKey("p1", "v1"), -1)

	assert.True(t, c.IsEmpty())
}

func TestTotals(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 2, "250.00"))
	c.AddItem(testItem("p2", "v3", 1, "899.50"))

	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, "1399.50", c.TotalPrice().StringFixed(2))
}

func TestTotals_TrackMutations(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 2, "250.00"))
	c.AddItem(testItem("p2", "v3", 4, "100.00"))
	c.UpdateQuantity(CompositeKey("p2", "v3"), 1)
	c.RemoveItem(CompositeKey("p1", "v1"))

	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, "100.00", c.TotalPrice().StringFixed(2))
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 2, "250.00"))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestItemIsValid(t *testing.T) {
	valid := testItem("p1", "v1", 1, "250.00")
	assert.True(t, valid.IsValid())

	noImage := valid
	noImage.Variant.ImageURL = ""
	assert.False(t, noImage.IsValid(), "a line without a usable image reference is malformed")

	noName := valid
	noName.Name = ""
	assert.False(t, noName.IsValid())

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.False(t, zeroQty.IsValid())
}

func TestValidItems_FiltersMalformedLines(t *testing.T) {
	c := New()
	c.AddItem(testItem("p1", "v1", 1, "250.00"))
	// line from a stale schema, missing the variant image
	stale := testItem("p2", "v2", 1, "450.00")
	stale.Variant.ImageURL = ""
	c.Items = append(c.Items, stale)

	valid := c.ValidItems()
	assert.Len(t, valid, 1)
	assert.Equal(t, CompositeKey("p1", "v1"), valid[0].Key)
}
