// Package authz provides the role-check predicate shared by handlers and use cases.
// The auth middleware only authenticates; which role a route demands is decided here.
package authz

import (
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
)

// RequireRole returns ErrForbidden unless the actor carries the required role.
func RequireRole(actor entity.Actor, required entity.Role) error {
	if actor.Role != required {
		return domainerrors.ErrForbidden.WrapMessage("require '" + required.String() + "' role")
	}

	return nil
}
