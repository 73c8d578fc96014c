// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"haven/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// CredentialByEmail retrieves a user together with their stored password
	// hash. This is the only read path that exposes the hash; it exists for
	// login verification and nothing else.
	CredentialByEmail(ctx context.Context, email string) (*entity.User, string, error)

	// Create persists a new user entity with its password hash. The storage
	// enforces email uniqueness; a duplicate insert surfaces as a conflict error.
	Create(ctx context.Context, user *entity.User, passwordHash string) error
}
