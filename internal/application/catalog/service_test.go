package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*catalog.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Variant), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) SaveVariant(ctx context.Context, v *catalog.Variant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// stubImages is a minimal ImageStorage for service tests
type stubImages struct{}

func (stubImages) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	return "https://upload.example.com/" + storageKey, time.Now().Add(15 * time.Minute), nil
}

func (stubImages) PublicURL(storageKey string) string {
	return "https://cdn.example.com/" + storageKey
}

func newTestCatalogService(repo *MockProductRepository) *Service {
	return NewService(repo, stubImages{}, zap.NewNop())
}

func newTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Millet Dosa Mix", "Stone-ground millet batter mix")
	require.NoError(t, err)
	_, err = p.AddVariant("500g", decimal.NewFromInt(250), "https://cdn.example.com/dosa.jpg", "MDM-500", "", 10)
	require.NoError(t, err)
	return p
}

func TestService_ListProducts(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	repo.On("FindAll", mock.Anything).Return([]catalog.Product{*p}, nil)

	resp, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Millet Dosa Mix", resp[0].Name)
	require.Len(t, resp[0].Variants, 1)
	assert.Equal(t, "250.00", resp[0].Variants[0].Price)
	assert.Equal(t, "₹250.00", resp[0].Variants[0].DisplayPrice)
	assert.True(t, resp[0].Variants[0].InStock)
}

func TestService_GetProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	_, err := svc.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_CreateProduct(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:        "Ragi Flakes",
		Description: "Crispy finger-millet flakes",
		IsPopular:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ragi Flakes", resp.Name)
	assert.True(t, resp.IsPopular)
	assert.NotEmpty(t, resp.ID)
	repo.AssertCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_CreateProduct_EmptyName(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Description: "No name",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRODUCT_NAME", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_UpdateProduct(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)

	resp, err := svc.UpdateProduct(context.Background(), p.ID, UpdateProductRequest{
		Name:        "Millet Dosa Mix Classic",
		Description: "Stone-ground millet batter mix, new recipe",
		IsPopular:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Millet Dosa Mix Classic", resp.Name)
	assert.True(t, resp.IsPopular)
	repo.AssertCalled(t, "Save", mock.Anything, p)
}

func TestService_UpdateProduct_EmptyName(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

	_, err := svc.UpdateProduct(context.Background(), p.ID, UpdateProductRequest{
		Name:        "",
		Description: "still described",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRODUCT_NAME", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_AddVariant(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("Save", mock.Anything, p).Return(nil)

	resp, err := svc.AddVariant(context.Background(), p.ID, AddVariantRequest{
		Size:          "1kg",
		Price:         "450.00",
		ImageURL:      "https://cdn.example.com/dosa-1kg.jpg",
		SKU:           "MDM-1000",
		StockQuantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "1kg", resp.Size)
	assert.Equal(t, "450.00", resp.Price)
	assert.Len(t, p.Variants, 2)
}

func TestService_AddVariant_BadPrice(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	_, err := svc.AddVariant(context.Background(), uuid.New(), AddVariantRequest{
		Size:     "1kg",
		Price:    "four hundred",
		ImageURL: "https://cdn.example.com/x.jpg",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRICE", domainErr.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_UpdateStock(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	variant := &p.Variants[0]
	repo.On("FindVariantByID", mock.Anything, variant.ID).Return(variant, nil)
	repo.On("SaveVariant", mock.Anything, variant).Return(nil)

	resp, err := svc.UpdateStock(context.Background(), variant.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StockQuantity)
	assert.False(t, resp.InStock)
}

func TestService_UpdateStock_Negative(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	variant := &p.Variants[0]
	repo.On("FindVariantByID", mock.Anything, variant.ID).Return(variant, nil)

	_, err := svc.UpdateStock(context.Background(), variant.ID, -3)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STOCK", domainErr.Code)
	repo.AssertNotCalled(t, "SaveVariant", mock.Anything, mock.Anything)
}

func TestService_GenerateImageUploadURL(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newTestCatalogService(repo)

	p := newTestProduct(t)
	variant := &p.Variants[0]
	repo.On("FindVariantByID", mock.Anything, variant.ID).Return(variant, nil)
	repo.On("SaveVariant", mock.Anything, variant).Return(nil)

	resp, err := svc.GenerateImageUploadURL(context.Background(), variant.ID, "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, resp.UploadURL, "https://upload.example.com/variants/")
	assert.Contains(t, resp.ImageURL, "https://cdn.example.com/variants/")
	assert.Equal(t, resp.ImageURL, variant.ImageURL)
	assert.NotEmpty(t, resp.ExpiresAt)
}
