// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "haven/internal/delivery/context"
	"haven/internal/domain/authz"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for propertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: params.PropertyRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProperty publishes a new listing owned by the actor.
func (srv *propertyService) CreateProperty(ctx context.Context, actor entity.Actor, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	if err := authz.RequireRole(actor, entity.RoleSeller); err != nil {
		srv.log(ctx).Warn("Listing creation rejected", slog.Any("userID", actor.UserID), slog.String("role", actor.Role.String()))

		return nil, err
	}

	if err := validateCreatePropertyInput(input); err != nil {
		return nil, err
	}

	// The token vouches for the actor, but the owning seller must still be a
	// live seller account in the store. An account deleted or repurposed
	// after token issuance may not publish.
	seller, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrForbidden.WrapMessage("seller account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load seller account")
	}
	if seller.Role != entity.RoleSeller {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is not a seller")
	}

	property := &entity.Property{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Bedrooms:    *input.Bedrooms,
		Bathrooms:   *input.Bathrooms,
		Rent:        *input.Rent,
		SellerID:    actor.UserID,
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	property.Seller = seller.Contact()

	srv.log(ctx).Debug("Listing created", slog.Any("propertyID", property.ID), slog.Any("sellerID", actor.UserID))

	return property, nil
}

// ListProperties returns all listings with seller contact details joined in.
func (srv *propertyService) ListProperties(ctx context.Context, actor entity.Actor) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list properties", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	return properties, nil
}

func validateCreatePropertyInput(input *usecase.CreatePropertyInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("listing input is required")
	}

	switch {
	case input.Title == "", input.Description == "", input.Location == "":
		return domainerrors.ErrValidationFailed.WrapMessage("title, description and location are required")
	case input.Bedrooms == nil || input.Bathrooms == nil || input.Rent == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("bedrooms, bathrooms and rent are required")
	case *input.Bedrooms < 0 || *input.Bathrooms < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("bedrooms and bathrooms must not be negative")
	case *input.Rent <= 0:
		return domainerrors.ErrValidationFailed.WrapMessage("rent must be positive")
	}

	return nil
}
