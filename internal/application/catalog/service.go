package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ImageStorage generates presigned upload URLs for variant images.
// Implemented by the S3-compatible object storage layer.
type ImageStorage interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	PublicURL(storageKey string) string
}

// Service handles catalog operations for the storefront and the admin API
type Service struct {
	products catalog.ProductRepository
	images   ImageStorage
	logger   *zap.Logger
}

// NewService creates a new catalog Service
func NewService(products catalog.ProductRepository, images ImageStorage, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		images:   images,
		logger:   logger.Named("catalog"),
	}
}

// ListProducts returns all product lines with their variants
func (s *Service) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ToProductResponse(&products[i]))
	}
	return responses, nil
}

// GetProduct returns a single product with its variants
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// CreateProduct creates a new product line (admin)
func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	product.SetPopular(req.IsPopular)

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	return ToProductResponse(product), nil
}

// UpdateProduct changes a product line's details (admin)
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateDetails(req.Name, req.Description); err != nil {
		return nil, err
	}
	product.SetPopular(req.IsPopular)

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// AddVariant adds a purchasable variant to a product line (admin)
func (s *Service) AddVariant(ctx context.Context, productID uuid.UUID, req AddVariantRequest) (*VariantResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal string")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant, err := product.AddVariant(req.Size, price, req.ImageURL, req.SKU, req.BestValueBadge, req.StockQuantity)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToVariantResponse(variant)
	return &resp, nil
}

// UpdateStock sets a variant's stock quantity (admin). Stock never goes
// negative; the domain rejects such updates.
func (s *Service) UpdateStock(ctx context.Context, variantID uuid.UUID, quantity int) (*VariantResponse, error) {
	variant, err := s.products.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if err := variant.UpdateStock(quantity); err != nil {
		return nil, err
	}
	if err := s.products.SaveVariant(ctx, variant); err != nil {
		return nil, err
	}

	s.logger.Info("variant stock updated",
		zap.String("variant_id", variantID.String()),
		zap.Int("stock_quantity", quantity))

	resp := ToVariantResponse(variant)
	return &resp, nil
}

// GenerateImageUploadURL presigns an upload slot for a variant image and
// returns both the upload URL and the public URL the image will be served
// from once uploaded (admin)
func (s *Service) GenerateImageUploadURL(ctx context.Context, variantID uuid.UUID, contentType string) (*UploadURLResponse, error) {
	variant, err := s.products.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	storageKey := fmt.Sprintf("variants/%s/%d", variant.ID, time.Now().Unix())
	uploadURL, expiresAt, err := s.images.GenerateUploadURL(ctx, storageKey, contentType, 0)
	if err != nil {
		return nil, err
	}

	publicURL := s.images.PublicURL(storageKey)
	if err := variant.SetImageURL(publicURL); err != nil {
		return nil, err
	}
	if err := s.products.SaveVariant(ctx, variant); err != nil {
		return nil, err
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ImageURL:  publicURL,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}
