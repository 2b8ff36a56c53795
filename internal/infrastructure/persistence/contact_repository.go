package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/contact"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// GormContactRepository implements contact.Repository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Save stores a new contact submission
func (r *GormContactRepository) Save(ctx context.Context, c *contact.Contact) error {
	model := models.ContactModelFromDomain(c)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindAll lists submissions, newest first
func (r *GormContactRepository) FindAll(ctx context.Context) ([]contact.Contact, error) {
	var contactModels []models.ContactModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contactModels).Error; err != nil {
		return nil, err
	}

	contacts := make([]contact.Contact, 0, len(contactModels))
	for i := range contactModels {
		contacts = append(contacts, *contactModels[i].ToDomain())
	}
	return contacts, nil
}

var _ contact.Repository = (*GormContactRepository)(nil)
