package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestProfileService_ListUsers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
	}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProfileService_CreateUser_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Email:     "new@example.com",
		Password:  "Password123!",
		FirstName: "Grace",
		LastName:  "Hopper",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Hopper", got.LastName)
}

func TestProfileService_UpdateUser_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:        userID,
		Email:     "old@example.com",
		FirstName: "Old",
		LastName:  "Name",
		Address:   entity.Address{Country: "Poland", City: "Warsaw", ZipCode: "00-001", Street: "Main 1"},
	}
	newFirst := "Fresh"
	input := &usecase.UpdateUserInput{FirstName: &newFirst}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Fresh", user.FirstName)
					assert.Equal(t, "Name", user.LastName)
					assert.Equal(t, "old@example.com", user.Email)
					assert.Equal(t, "Warsaw", user.Address.City)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateUser(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Fresh", got.FirstName)
}

func TestProfileService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	got, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_DeleteUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			// Credentials and sessions go explicitly, not via cascades.
			mockAuthRepo.EXPECT().DeleteAuthenticationsByUserID(ctx, userID).Return(nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.DeleteUser(ctx, userID))
}

func TestProfileService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAuthRepo.EXPECT().DeleteAuthenticationsByUserID(ctx, userID).Return(nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetAddress_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Address: entity.Address{Country: "Poland", City: "Warsaw", ZipCode: "00-001", Street: "Main 1"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetAddress(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Warsaw", got.City)
}

func TestProfileService_GetAddress_NoneSaved(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	got, err := fx.service.GetAddress(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestProfileService_SaveAddress_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SaveAddressInput{
		Country: "Poland",
		City:    "Gdansk",
		ZipCode: "80-001",
		Street:  "Długa 5",
	}

	fx.userRepo.EXPECT().
		UpdateAddress(ctx, userID, entity.Address{
			Country: "Poland",
			City:    "Gdansk",
			ZipCode: "80-001",
			Street:  "Długa 5",
		}).
		Return(nil)

	got, err := fx.service.SaveAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Gdansk", got.City)
}

func TestProfileService_SaveAddress_Incomplete(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.SaveAddressInput{Country: "Poland", ZipCode: "80-001"}

	got, err := fx.service.SaveAddress(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAddressIncomplete)
}

func TestProfileService_SaveAddress_BadZipCode(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.SaveAddressInput{
		Country: "Poland",
		City:    "Gdansk",
		ZipCode: "80001",
		Street:  "Długa 5",
	}

	got, err := fx.service.SaveAddress(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidZipCode)
}
