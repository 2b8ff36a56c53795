package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/contact"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// setupCatalogTestDB creates an in-memory SQLite database for testing
func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProductModel{}, &models.VariantModel{}, &models.ContactModel{})
	require.NoError(t, err)

	return db
}

func newTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Millet Dosa Mix", "Stone-ground millet dosa batter mix")
	require.NoError(t, err)
	_, err = p.AddVariant("500g", decimal.NewFromInt(250), "https://img/500g.jpg", "MDM-500", "", 40)
	require.NoError(t, err)
	_, err = p.AddVariant("1kg", decimal.NewFromInt(450), "https://img/1kg.jpg", "MDM-1000", "Best Value", 25)
	require.NoError(t, err)
	return p
}

func TestGormProductRepository_SaveAndFindByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	p := newTestProduct(t)
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Millet Dosa Mix", found.Name)
	require.Len(t, found.Variants, 2)
	// Variants come back cheapest first
	assert.Equal(t, "500g", found.Variants[0].Size)
	assert.Equal(t, "Best Value", found.Variants[1].BestValueBadge)
}

func TestGormProductRepository_FindByID_NotFound(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindAll_PopularFirst(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	plain := newTestProduct(t)
	require.NoError(t, repo.Save(ctx, plain))

	popular, err := catalog.NewProduct("Pure Ghee", "Slow-churned cultured ghee")
	require.NoError(t, err)
	_, err = popular.AddVariant("250ml", decimal.NewFromInt(399), "https://img/ghee.jpg", "GHE-250", "", 10)
	require.NoError(t, err)
	popular.SetPopular(true)
	require.NoError(t, repo.Save(ctx, popular))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Pure Ghee", all[0].Name)
}

func TestGormProductRepository_SaveVariant_UpdatesStockAndPrice(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	p := newTestProduct(t)
	require.NoError(t, repo.Save(ctx, p))

	v := p.Variants[0]
	require.NoError(t, v.UpdateStock(7))
	require.NoError(t, v.UpdatePrice(decimal.NewFromInt(275)))
	require.NoError(t, repo.SaveVariant(ctx, &v))

	found, err := repo.FindVariantByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.StockQuantity)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(275)))
}

func TestGormContactRepository_SaveAndFindAll(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormContactRepository(db)
	ctx := context.Background()

	first, err := contact.New("Asha", "Iyer", "asha@example.com", "+919876543210", "Do you ship to Pune?")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := contact.New("Ravi", "Kumar", "ravi@example.com", "", "Bulk order enquiry")
	require.NoError(t, err)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ravi", all[0].FirstName)
}
