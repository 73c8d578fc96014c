package middleware

import (
	"strings"

	"haven/internal/delivery/http/response"
	"haven/internal/domain/entity"
	"haven/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// actorKey is the echo.Context key under which the authenticated actor is stored.
const actorKey = "actor"

// AuthMiddleware provides middleware for JWT authentication.
// It is the single enforcement point for token verification; role checks
// belong to the handlers behind it.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access token.
// On success the actor is attached to the context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MISSING", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(actorKey, entity.Actor{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return next(c)
	}
}

// ActorFromContext returns the actor attached by Authenticate.
func ActorFromContext(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(entity.Actor)

	return actor, ok
}
