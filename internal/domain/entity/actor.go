// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Actor is the authenticated identity attached to a request after the access
// token has been verified. Handlers receive it explicitly instead of digging
// claims out of the raw token.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}
