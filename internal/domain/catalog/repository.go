package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for the catalog
type ProductRepository interface {
	// FindByID finds a product by ID, including its variants
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll lists all products with their variants
	FindAll(ctx context.Context) ([]Product, error)

	// FindVariantByID finds a single variant
	FindVariantByID(ctx context.Context, id uuid.UUID) (*Variant, error)

	// Save creates or updates a product with its variants
	Save(ctx context.Context, p *Product) error

	// SaveVariant updates a single variant
	SaveVariant(ctx context.Context, v *Variant) error
}
