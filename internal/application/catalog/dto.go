package catalog

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/storefront/backend/internal/domain/catalog"
)

// inrPrinter renders amounts with Indian digit grouping (1,00,000)
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a price as a display string, e.g. "₹1,399.50"
func FormatINR(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return inrPrinter.Sprintf("₹%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// CreateProductRequest is the admin payload for creating a product line
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsPopular   bool   `json:"is_popular"`
}

// UpdateProductRequest is the admin payload for updating a product line
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsPopular   bool   `json:"is_popular"`
}

// AddVariantRequest is the admin payload for adding a purchasable variant
type AddVariantRequest struct {
	Size           string `json:"size" binding:"required"`
	Price          string `json:"price" binding:"required"`
	ImageURL       string `json:"image_url" binding:"required"`
	SKU            string `json:"sku"`
	BestValueBadge string `json:"best_value_badge"`
	StockQuantity  int    `json:"stock_quantity"`
}

// UpdateStockRequest is the admin payload for a stock adjustment
type UpdateStockRequest struct {
	StockQuantity int `json:"stock_quantity"`
}

// VariantResponse is the wire representation of a variant
type VariantResponse struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	Size           string `json:"size"`
	Price          string `json:"price"`
	DisplayPrice   string `json:"display_price"`
	ImageURL       string `json:"image_url"`
	SKU            string `json:"sku,omitempty"`
	BestValueBadge string `json:"best_value_badge,omitempty"`
	StockQuantity  int    `json:"stock_quantity"`
	InStock        bool   `json:"in_stock"`
}

// ProductResponse is the wire representation of a product line
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsPopular   bool              `json:"is_popular"`
	Variants    []VariantResponse `json:"variants"`
}

// UploadURLResponse carries a presigned image upload URL
type UploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	ImageURL  string `json:"image_url"`
	ExpiresAt string `json:"expires_at"`
}

// ToVariantResponse maps a domain variant to its wire form
func ToVariantResponse(v *catalog.Variant) VariantResponse {
	return VariantResponse{
		ID:             v.ID.String(),
		ProductID:      v.ProductID.String(),
		Size:           v.Size,
		Price:          v.Price.StringFixed(2),
		DisplayPrice:   FormatINR(v.Price),
		ImageURL:       v.ImageURL,
		SKU:            v.SKU,
		BestValueBadge: v.BestValueBadge,
		StockQuantity:  v.StockQuantity,
		InStock:        v.StockQuantity > 0,
	}
}

// ToProductResponse maps a domain product to its wire form
func ToProductResponse(p *catalog.Product) *ProductResponse {
	variants := make([]VariantResponse, 0, len(p.Variants))
	for i := range p.Variants {
		variants = append(variants, ToVariantResponse(&p.Variants[i]))
	}
	return &ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		IsPopular:   p.IsPopular,
		Variants:    variants,
	}
}
