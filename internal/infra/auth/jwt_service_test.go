package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haven/config"
	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"
)

const testSecret = "test-signing-secret"

func newTestJWTService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID, entity.RoleSeller)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleSeller, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)

	// Expiry lands roughly one TTL from now.
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateMalformed(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	claims, err := svc.Validate("not-a-token")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ValidateTampered(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Generate(uuid.New(), entity.RoleBuyer)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := svc.Validate(tampered)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ValidateWrongSecret(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Generate(uuid.New(), entity.RoleBuyer)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ValidateExpired(t *testing.T) {
	// An already-elapsed TTL produces tokens that are expired on arrival.
	svc := &jwtService{secret: testSecret, accessTTL: -time.Minute}

	token, err := svc.Generate(uuid.New(), entity.RoleSeller)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ValidateRejectsBadClaims(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	exp := time.Now().Add(time.Hour).Unix()

	signed := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		return token
	}

	testCases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing expiry", jwt.MapClaims{"sub": uuid.New().String(), "role": "seller"}},
		{"missing subject", jwt.MapClaims{"role": "seller", "exp": exp}},
		{"subject not a uuid", jwt.MapClaims{"sub": "42", "role": "seller", "exp": exp}},
		{"missing role", jwt.MapClaims{"sub": uuid.New().String(), "exp": exp}},
		{"unknown role", jwt.MapClaims{"sub": uuid.New().String(), "role": "landlord", "exp": exp}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.Validate(signed(tc.claims))
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := newTestJWTService(t, 30*time.Minute)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenDuration())

	// Without an explicit TTL the service falls back to one hour.
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	fallback, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, fallback.AccessTokenDuration())
}
