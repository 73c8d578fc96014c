// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"haven/internal/domain/entity"
)

// PropertyRepository defines the standard operations for listing persistence.
type PropertyRepository interface {
	// Create persists a new property listing.
	Create(ctx context.Context, property *entity.Property) error

	// ListAll returns every property with the owning seller resolved to its
	// contact projection.
	ListAll(ctx context.Context) ([]*entity.Property, error)
}
