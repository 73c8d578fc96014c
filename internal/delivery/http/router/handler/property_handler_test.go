package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"haven/internal/delivery/http/middleware"
	"haven/internal/delivery/http/validator"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"
	mockSvc "haven/internal/mocks/service"
	mockUsecase "haven/internal/mocks/usecase"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type propertyHandlerFixtures struct {
	e        *echo.Echo
	uc       *mockUsecase.MockPropertyUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newPropertyTestServer(t *testing.T) propertyHandlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockPropertyUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewPropertyHandler(uc, logger)
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	properties := e.Group("/properties", authMw.Authenticate)
	properties.POST("", h.CreateProperty)
	properties.GET("", h.ListProperties)

	return propertyHandlerFixtures{e: e, uc: uc, tokenSvc: tokenSvc}
}

func (fx propertyHandlerFixtures) request(method, body, authHeader string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/properties", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

const createPropertyBody = `{
	"title": "Two bedroom flat near the river",
	"description": "Bright flat with a balcony and a renovated kitchen.",
	"location": "Taipei, Da'an District",
	"bedrooms": 2,
	"bathrooms": 1,
	"rent": 28000
}`

func sellerClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Role: entity.RoleSeller}
}

func TestPropertyHandler_MissingAuthorizationHeader(t *testing.T) {
	fx := newPropertyTestServer(t)

	for _, method := range []string{http.MethodPost, http.MethodGet} {
		rec := fx.request(method, "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
	}
}

func TestPropertyHandler_NonBearerScheme(t *testing.T) {
	fx := newPropertyTestServer(t)

	rec := fx.request(http.MethodGet, "", "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestPropertyHandler_InvalidToken(t *testing.T) {
	fx := newPropertyTestServer(t)

	fx.tokenSvc.EXPECT().Validate("bad-token").Return(nil, domainerrors.ErrTokenInvalid)

	rec := fx.request(http.MethodGet, "", "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestPropertyHandler_CreateProperty_Success(t *testing.T) {
	fx := newPropertyTestServer(t)

	sellerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("seller-token").Return(sellerClaims(sellerID), nil)

	created := &entity.Property{
		ID:          uuid.New(),
		Title:       "Two bedroom flat near the river",
		Description: "Bright flat with a balcony and a renovated kitchen.",
		Location:    "Taipei, Da'an District",
		Bedrooms:    2,
		Bathrooms:   1,
		Rent:        28000,
		SellerID:    sellerID,
		Seller: &entity.SellerContact{
			ID:          sellerID,
			FirstName:   "Mei",
			LastName:    "Lin",
			Email:       "mei.lin@example.com",
			PhoneNumber: "0912345678",
		},
		CreatedAt: time.Now(),
	}

	fx.uc.EXPECT().
		CreateProperty(mock.Anything, entity.Actor{UserID: sellerID, Role: entity.RoleSeller}, mock.AnythingOfType("*usecase.CreatePropertyInput")).
		Return(created, nil)

	rec := fx.request(http.MethodPost, createPropertyBody, "Bearer seller-token")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, created.ID.String())
	assert.Contains(t, body, sellerID.String())
	assert.Contains(t, body, "mei.lin@example.com")
}

func TestPropertyHandler_CreateProperty_BuyerForbidden(t *testing.T) {
	fx := newPropertyTestServer(t)

	buyerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("buyer-token").Return(&service.Claims{UserID: buyerID, Role: entity.RoleBuyer}, nil)

	fx.uc.EXPECT().
		CreateProperty(mock.Anything, entity.Actor{UserID: buyerID, Role: entity.RoleBuyer}, mock.AnythingOfType("*usecase.CreatePropertyInput")).
		Return(nil, domainerrors.ErrForbidden.WrapMessage("only sellers can create properties"))

	rec := fx.request(http.MethodPost, createPropertyBody, "Bearer buyer-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestPropertyHandler_CreateProperty_ValidationFailed(t *testing.T) {
	fx := newPropertyTestServer(t)

	sellerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("seller-token").Return(sellerClaims(sellerID), nil)

	fx.uc.EXPECT().
		CreateProperty(mock.Anything, mock.AnythingOfType("entity.Actor"), mock.AnythingOfType("*usecase.CreatePropertyInput")).
		Return(nil, domainerrors.ErrValidationFailed.WrapMessage("title, description and location are required"))

	rec := fx.request(http.MethodPost, `{"bedrooms": 2}`, "Bearer seller-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

// An absent body and a literal-null body bind to a nil input. The handler
// substitutes an empty input so the use case still runs its role check first
// and a seller gets a validation failure, never a panic.
func TestPropertyHandler_CreateProperty_EmptyBody(t *testing.T) {
	fx := newPropertyTestServer(t)

	sellerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("seller-token").Return(sellerClaims(sellerID), nil).Twice()

	fx.uc.EXPECT().
		CreateProperty(mock.Anything, entity.Actor{UserID: sellerID, Role: entity.RoleSeller}, &usecase.CreatePropertyInput{}).
		Return(nil, domainerrors.ErrValidationFailed.WrapMessage("listing input is required")).
		Twice()

	for _, body := range []string{"", "null"} {
		rec := fx.request(http.MethodPost, body, "Bearer seller-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	}
}

// A buyer with an empty body is still turned away with 403, not 400.
func TestPropertyHandler_CreateProperty_EmptyBodyBuyerForbidden(t *testing.T) {
	fx := newPropertyTestServer(t)

	buyerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("buyer-token").Return(&service.Claims{UserID: buyerID, Role: entity.RoleBuyer}, nil)

	fx.uc.EXPECT().
		CreateProperty(mock.Anything, entity.Actor{UserID: buyerID, Role: entity.RoleBuyer}, &usecase.CreatePropertyInput{}).
		Return(nil, domainerrors.ErrForbidden.WrapMessage("require 'seller' role"))

	rec := fx.request(http.MethodPost, "", "Bearer buyer-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestPropertyHandler_CreateProperty_MalformedJSON(t *testing.T) {
	fx := newPropertyTestServer(t)

	sellerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("seller-token").Return(sellerClaims(sellerID), nil)

	rec := fx.request(http.MethodPost, `{"title": `, "Bearer seller-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestPropertyHandler_ListProperties_Success(t *testing.T) {
	fx := newPropertyTestServer(t)

	buyerID := uuid.New()
	sellerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("buyer-token").Return(&service.Claims{UserID: buyerID, Role: entity.RoleBuyer}, nil)

	listings := []*entity.Property{
		{
			ID:       uuid.New(),
			Title:    "Two bedroom flat near the river",
			Rent:     28000,
			SellerID: sellerID,
			Seller: &entity.SellerContact{
				ID:          sellerID,
				FirstName:   "Mei",
				LastName:    "Lin",
				Email:       "mei.lin@example.com",
				PhoneNumber: "0912345678",
			},
		},
	}

	fx.uc.EXPECT().
		ListProperties(mock.Anything, entity.Actor{UserID: buyerID, Role: entity.RoleBuyer}).
		Return(listings, nil)

	rec := fx.request(http.MethodGet, "", "Bearer buyer-token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Two bedroom flat near the river")
	assert.Contains(t, body, `"firstName":"Mei"`)
	assert.Contains(t, body, `"phoneNumber":"0912345678"`)

	// The seller projection is contact details only.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "hash")
	assert.NotContains(t, body, "role")
}

func TestPropertyHandler_ListProperties_Empty(t *testing.T) {
	fx := newPropertyTestServer(t)

	sellerID := uuid.New()
	fx.tokenSvc.EXPECT().Validate("seller-token").Return(sellerClaims(sellerID), nil)
	fx.uc.EXPECT().
		ListProperties(mock.Anything, entity.Actor{UserID: sellerID, Role: entity.RoleSeller}).
		Return([]*entity.Property{}, nil)

	rec := fx.request(http.MethodGet, "", "Bearer seller-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
