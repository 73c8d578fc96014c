// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"haven/internal/domain/entity"
)

// CreatePropertyInput defines the data required to publish a listing.
// Bedrooms, bathrooms and rent are pointers so that an absent field and a
// zero value can be told apart during validation.
type CreatePropertyInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Bedrooms    *int     `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"required,gte=0"`
	Rent        *float64 `json:"rent" validate:"required,gt=0"`
}

// PropertyUsecase defines the interface for listing-related business operations.
// Every operation receives the authenticated actor explicitly; role decisions
// happen here, not in the auth middleware.
type PropertyUsecase interface {
	// CreateProperty publishes a new listing owned by the actor.
	// Only sellers may call it.
	CreateProperty(ctx context.Context, actor entity.Actor, input *CreatePropertyInput) (*entity.Property, error)

	// ListProperties returns all listings with seller contact details joined in.
	// Any authenticated actor may call it.
	ListProperties(ctx context.Context, actor entity.Actor) ([]*entity.Property, error)
}
