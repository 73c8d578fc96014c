package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	mockRepo "haven/internal/mocks/repository"
	mockSvc "haven/internal/mocks/service"
	"haven/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:   "Mei",
		LastName:    "Lin",
		Email:       "mei.lin@example.com",
		PhoneNumber: "0912345678",
		Password:    "Password123!",
		Role:        "seller",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
				Run(func(ctx context.Context, user *entity.User, passwordHash string) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleSeller, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	existing := &entity.User{ID: uuid.New(), Email: input.Email, Role: entity.RoleBuyer}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAccountService_Register_ValidationFailures(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(input *usecase.RegisterInput)
	}{
		{"missing first name", func(input *usecase.RegisterInput) { input.FirstName = "" }},
		{"missing last name", func(input *usecase.RegisterInput) { input.LastName = "" }},
		{"missing email", func(input *usecase.RegisterInput) { input.Email = "" }},
		{"missing phone number", func(input *usecase.RegisterInput) { input.PhoneNumber = "" }},
		{"missing password", func(input *usecase.RegisterInput) { input.Password = "" }},
		{"unknown role", func(input *usecase.RegisterInput) { input.Role = "landlord" }},
		{"empty role", func(input *usecase.RegisterInput) { input.Role = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegisterInput()
			tc.mutate(input)

			output, err := fx.service.Register(ctx, input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

// A nil input is a validation failure, never a dereference.
func TestAccountService_Register_NilInput(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Register(context.Background(), nil)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Login_NilInput(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), nil)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "mei.lin@example.com", Role: entity.RoleSeller}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, input.Email).
		Return(user, "stored_hash", nil)
	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
	fx.tokenService.EXPECT().Generate(user.ID, user.Role).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, input.Email).
		Return(nil, "", repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "mei.lin@example.com", Role: entity.RoleBuyer}
	input := &usecase.LoginInput{Email: user.Email, Password: "WrongPassword!"}

	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, input.Email).
		Return(user, "stored_hash", nil)
	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAccountService_Login_ErrorsDoNotRevealAccountExistence(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, "ghost@example.com").
		Return(nil, "", repository.ErrUserNotFound)
	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"})

	user := &entity.User{ID: uuid.New(), Email: "mei.lin@example.com", Role: entity.RoleBuyer}
	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, user.Email).
		Return(user, "stored_hash", nil)
	fx.hasher.EXPECT().Check("WrongPassword!", "stored_hash").Return(false)
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "WrongPassword!"})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownEmailErr, &unknownApp))
	require.True(t, errors.As(wrongPasswordErr, &wrongApp))
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "", Password: "Password123!"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	output, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "mei.lin@example.com", Password: ""})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "mei.lin@example.com", Role: entity.RoleSeller}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().
		CredentialByEmail(ctx, input.Email).
		Return(user, "stored_hash", nil)
	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
	fx.tokenService.EXPECT().Generate(user.ID, user.Role).Return("", errors.New("signing failure"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.Error(t, err)
}
