// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	PropertyHandler     *handler.PropertyHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	propertyHandler     *handler.PropertyHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		propertyHandler:     params.PropertyHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Listing routes require authentication. Role gating for POST happens in
	// the use case, not here.
	propertyGroup := e.Group("/properties")
	propertyGroup.Use(r.authMiddleware.Authenticate)
	{
		propertyGroup.POST("", r.propertyHandler.CreateProperty)
		propertyGroup.GET("", r.propertyHandler.ListProperties)
	}
}
