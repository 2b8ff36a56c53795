package cart

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles cart operations keyed by the shopper's session
type Service struct {
	store    cart.Store
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewService creates a new cart Service
func NewService(store cart.Store, products catalog.ProductRepository, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		products: products,
		logger:   logger.Named("cart"),
	}
}

// GetCart returns the current cart for the session
func (s *Service) GetCart(ctx context.Context, sessionKey string) (*Response, error) {
	c, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return ToResponse(c), nil
}

// AddItem adds a variant to the cart, snapshotting its current price and
// image. Quantities merge onto the existing line for the same variant.
func (s *Service) AddItem(ctx context.Context, sessionKey string, req AddItemRequest) (*Response, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID must be a UUID")
	}
	variantID, err := uuid.Parse(req.VariantID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_VARIANT", "Variant ID must be a UUID")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var variant *catalog.Variant
	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			variant = &product.Variants[i]
			break
		}
	}
	if variant == nil {
		return nil, shared.ErrNotFound
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if !variant.InStock(quantity) {
		return nil, shared.ErrInsufficientStock
	}

	c, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	c.AddItem(cart.Item{
		Key:       cart.CompositeKey(req.ProductID, req.VariantID),
		ProductID: req.ProductID,
		Name:      product.Name,
		Variant: cart.Variant{
			ID:       req.VariantID,
			Size:     variant.Size,
			Price:    variant.Price,
			ImageURL: variant.ImageURL,
		},
		Quantity:  quantity,
		UnitPrice: variant.Price,
	})

	if err := s.store.Save(ctx, sessionKey, c); err != nil {
		return nil, err
	}

	s.logger.Debug("cart item added",
		zap.String("session", sessionKey),
		zap.String("variant_id", req.VariantID),
		zap.Int("quantity", quantity))

	return ToResponse(c), nil
}

// UpdateQuantity sets the quantity of a cart line; zero or less removes it
func (s *Service) UpdateQuantity(ctx context.Context, sessionKey, itemKey string, quantity int) (*Response, error) {
	c, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(itemKey, quantity)

	if err := s.store.Save(ctx, sessionKey, c); err != nil {
		return nil, err
	}
	return ToResponse(c), nil
}

// RemoveItem deletes a cart line; removing an absent line is a no-op
func (s *Service) RemoveItem(ctx context.Context, sessionKey, itemKey string) (*Response, error) {
	c, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(itemKey)

	if err := s.store.Save(ctx, sessionKey, c); err != nil {
		return nil, err
	}
	return ToResponse(c), nil
}

// Clear empties the cart entirely
func (s *Service) Clear(ctx context.Context, sessionKey string) error {
	return s.store.Delete(ctx, sessionKey)
}
