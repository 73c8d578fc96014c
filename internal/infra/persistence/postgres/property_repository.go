// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// propertyRepository implements the repository.PropertyRepository interface using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// Create persists a new property listing.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPropertyCreationFailed.WrapMessage("seller reference does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPropertyCreationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// ListAll returns every property with the owning seller preloaded.
func (repo *propertyRepository) ListAll(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	err := repo.db.WithContext(ctx).
		Preload("Seller").
		Order("created_at DESC").
		Find(&propertyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for i := range propertyModels {
		properties = append(properties, toPropertyDomain(&propertyModels[i]))
	}

	return properties, nil
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
// The seller, when preloaded, is reduced to its contact projection.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	property := &entity.Property{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		Bedrooms:    data.Bedrooms,
		Bathrooms:   data.Bathrooms,
		Rent:        data.Rent,
		SellerID:    data.SellerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Seller != nil {
		property.Seller = toUserDomain(data.Seller).Contact()
	}

	return property
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel for persistence.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		Bedrooms:    data.Bedrooms,
		Bathrooms:   data.Bathrooms,
		Rent:        data.Rent,
		SellerID:    data.SellerID,
	}
}
