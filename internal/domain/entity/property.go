// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is a rental listing published by a seller.
type Property struct {
	ID          uuid.UUID      // The unique identifier for the listing.
	Title       string         // Short headline of the listing.
	Description string         // Free-text description of the property.
	Location    string         // Free-text location (city, district, address).
	Bedrooms    int            // Number of bedrooms. Never negative.
	Bathrooms   int            // Number of bathrooms. Never negative.
	Rent        float64        // Monthly rent. Always positive.
	SellerID    uuid.UUID      // The owning seller's user ID.
	Seller      *SellerContact // Seller projection, populated on reads that join the owner.
	CreatedAt   time.Time      // Timestamp of when this listing was created.
	UpdatedAt   time.Time      // Timestamp of the last modification to this listing.
}
