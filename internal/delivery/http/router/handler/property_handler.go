// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/response"
	"haven/internal/domain/entity"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for listing-related handlers.
type PropertyHandler struct {
	uc     usecase.PropertyUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

// sellerView is the seller projection embedded in listings: contact details only.
type sellerView struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
}

type propertyView struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Bedrooms    int         `json:"bedrooms"`
	Bathrooms   int         `json:"bathrooms"`
	Rent        float64     `json:"rent"`
	Seller      *sellerView `json:"seller,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func toPropertyView(property *entity.Property) *propertyView {
	if property == nil {
		return nil
	}

	view := &propertyView{
		ID:          property.ID,
		Title:       property.Title,
		Description: property.Description,
		Location:    property.Location,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		Rent:        property.Rent,
		CreatedAt:   property.CreatedAt,
	}

	if property.Seller != nil {
		view.Seller = &sellerView{
			ID:          property.Seller.ID,
			FirstName:   property.Seller.FirstName,
			LastName:    property.Seller.LastName,
			Email:       property.Seller.Email,
			PhoneNumber: property.Seller.PhoneNumber,
		}
	}

	return view
}

// CreateProperty handles the request to publish a new listing.
// The role check happens in the use case so a buyer gets 403 even when the
// payload is malformed.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication context")
	}

	var input *usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	// An empty or literal-null body binds to a nil pointer without error.
	// The use case still sees a non-nil input so the seller role check runs first.
	if input == nil {
		input = &usecase.CreatePropertyInput{}
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPropertyView(property), "Property created successfully")
}

// ListProperties handles the request to list all properties.
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication context")
	}

	properties, err := h.uc.ListProperties(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*propertyView, 0, len(properties))
	for _, property := range properties {
		views = append(views, toPropertyView(property))
	}

	return response.Success(c, http.StatusOK, views, "Properties retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
