package service

import (
	"time"

	"haven/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed access token for the given user and role.
	Generate(userID uuid.UUID, role entity.Role) (string, error)

	// Validate checks the integrity and expiry of a token string. Every
	// failure mode returns the same domain error.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token validity window.
	AccessTokenDuration() time.Duration
}
