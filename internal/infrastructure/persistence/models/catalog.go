package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name        string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text;not null"`
	IsPopular   bool           `gorm:"not null;default:false"`
	Variants    []VariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	variants := make([]catalog.Variant, 0, len(m.Variants))
	for i := range m.Variants {
		variants = append(variants, *m.Variants[i].ToDomain())
	}
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		IsPopular:   m.IsPopular,
		Variants:    variants,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.IsPopular = p.IsPopular
	m.Variants = make([]VariantModel, 0, len(p.Variants))
	for i := range p.Variants {
		vm := VariantModel{}
		vm.FromDomain(&p.Variants[i])
		m.Variants = append(m.Variants, vm)
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// VariantModel is the persistence model for a purchasable product variant.
type VariantModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Size           string          `gorm:"type:varchar(50);not null"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL       string          `gorm:"type:text;not null"`
	SKU            string          `gorm:"type:varchar(100);uniqueIndex"`
	BestValueBadge string          `gorm:"type:varchar(100)"`
	StockQuantity  int             `gorm:"not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VariantModel) TableName() string {
	return "product_variants"
}

// ToDomain converts the persistence model to a domain Variant.
func (m *VariantModel) ToDomain() *catalog.Variant {
	return &catalog.Variant{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Size:           m.Size,
		Price:          m.Price,
		ImageURL:       m.ImageURL,
		SKU:            m.SKU,
		BestValueBadge: m.BestValueBadge,
		StockQuantity:  m.StockQuantity,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Variant.
func (m *VariantModel) FromDomain(v *catalog.Variant) {
	m.ID = v.ID
	m.ProductID = v.ProductID
	m.Size = v.Size
	m.Price = v.Price
	m.ImageURL = v.ImageURL
	m.SKU = v.SKU
	m.BestValueBadge = v.BestValueBadge
	m.StockQuantity = v.StockQuantity
	m.CreatedAt = v.CreatedAt
	m.UpdatedAt = v.UpdatedAt
}
