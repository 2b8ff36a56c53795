package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// Product is a product line in the catalog, e.g. "Pure Ghee". Pricing and
// stock live on its variants.
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	IsPopular   bool
	Variants    []Variant
}

// NewProduct creates a new product line
func NewProduct(name, description string) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_DESCRIPTION", "Product description cannot be empty")
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Variants:    make([]Variant, 0),
	}, nil
}

// SetPopular flags the product line as popular
func (p *Product) SetPopular(popular bool) {
	p.IsPopular = popular
	p.Touch()
}

// UpdateDetails changes the product's name and description
func (p *Product) UpdateDetails(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if description == "" {
		return shared.NewDomainError("INVALID_PRODUCT_DESCRIPTION", "Product description cannot be empty")
	}
	p.Name = name
	p.Description = description
	p.Touch()
	return nil
}

// AddVariant appends a purchasable variant to the product
func (p *Product) AddVariant(size string, price decimal.Decimal, imageURL, sku, badge string, stock int) (*Variant, error) {
	v, err := NewVariant(p.ID, size, price, imageURL, sku, badge, stock)
	if err != nil {
		return nil, err
	}
	p.Variants = append(p.Variants, *v)
	p.Touch()
	return &p.Variants[len(p.Variants)-1], nil
}

// Variant is a specific purchasable size/SKU of a product, carrying its
// own price, image and stock
type Variant struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	Size           string
	Price          decimal.Decimal
	ImageURL       string
	SKU            string
	BestValueBadge string
	StockQuantity  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewVariant creates a new variant
func NewVariant(productID uuid.UUID, size string, price decimal.Decimal, imageURL, sku, badge string, stock int) (*Variant, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if size == "" {
		return nil, shared.NewDomainError("INVALID_VARIANT_SIZE", "Variant size cannot be empty")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price must be positive")
	}
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE_URL", "Variant image URL cannot be empty")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	now := time.Now()
	return &Variant{
		ID:             uuid.New(),
		ProductID:      productID,
		Size:           size,
		Price:          price,
		ImageURL:       imageURL,
		SKU:            sku,
		BestValueBadge: badge,
		StockQuantity:  stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// UpdateStock sets the stock quantity; it must remain non-negative
func (v *Variant) UpdateStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	v.StockQuantity = quantity
	v.UpdatedAt = time.Now()
	return nil
}

// UpdatePrice sets the variant price; it must stay positive
func (v *Variant) UpdatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price must be positive")
	}
	v.Price = price
	v.UpdatedAt = time.Now()
	return nil
}

// SetImageURL updates the variant image reference
func (v *Variant) SetImageURL(url string) error {
	if url == "" {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Variant image URL cannot be empty")
	}
	v.ImageURL = url
	v.UpdatedAt = time.Now()
	return nil
}

// InStock reports whether at least the requested quantity is available
func (v *Variant) InStock(quantity int) bool {
	return v.StockQuantity >= quantity
}
