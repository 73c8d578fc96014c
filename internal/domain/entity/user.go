// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. Each account belongs to
// exactly one role (buyer or seller), fixed at registration.
//
// The password hash is deliberately NOT part of this entity. Credentials live
// only in the persistence layer, so a User can be serialized into any response
// without redaction logic.
type User struct {
	ID          uuid.UUID // The unique identifier for the user.
	FirstName   string    // The user's given name.
	LastName    string    // The user's family name.
	Email       string    // The user's email, used as the login identifier. Unique across accounts.
	PhoneNumber string    // The user's contact phone number.
	Role        Role      // The account role, either RoleBuyer or RoleSeller.
	CreatedAt   time.Time // Timestamp of when this account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this account.
}

// SellerContact is the limited projection of a User that is safe to embed in
// property listings: name and contact details only.
type SellerContact struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// Contact returns the seller projection of the user.
func (u *User) Contact() *SellerContact {
	if u == nil {
		return nil
	}

	return &SellerContact{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}
