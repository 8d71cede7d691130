package impl

import (
	"context"
	"log/slog"
	"regexp"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// zipCodePattern matches the NN-NNN postal code form used on shipping addresses.
var zipCodePattern = regexp.MustCompile(`^\d{2}-\d{3}$`)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account for the admin panel.
func (srv *profileService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns a single account by ID.
func (srv *profileService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to get user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// CreateUser creates an account from the admin panel's add-user form.
// Unlike self-registration it takes the profile names as given.
func (srv *profileService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating user from admin panel", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var createdUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderEmail, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := &entity.User{
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}

		if authErr := authRepo.CreateAuthentication(ctx, newAuth); authErr != nil {
			return errors.Wrap(authErr, "failed to create authentication")
		}

		createdUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute create user transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create user transaction")
	}

	return createdUser, nil
}

// UpdateUser overwrites profile fields of an existing account. Nil input
// fields leave the stored values untouched.
func (srv *profileService) UpdateUser(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", userID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("failed to update user")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}

		applyUserUpdate(user, input)

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute update user transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update user transaction")
	}

	return updatedUser, nil
}

func applyUserUpdate(user *entity.User, input *usecase.UpdateUserInput) {
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Country != nil {
		user.Address.Country = *input.Country
	}
	if input.City != nil {
		user.Address.City = *input.City
	}
	if input.ZipCode != nil {
		user.Address.ZipCode = *input.ZipCode
	}
	if input.Street != nil {
		user.Address.Street = *input.Street
	}
}

// DeleteUser removes an account together with its credentials and open
// sessions in one transaction. Cart rows and comments go with the user row
// through the database cascades.
func (srv *profileService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if authErr := repoFactory.AuthRepo().DeleteAuthenticationsByUserID(ctx, userID); authErr != nil {
			return errors.Wrap(authErr, "failed to delete user credentials")
		}

		if tokenErr := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); tokenErr != nil {
			return errors.Wrap(tokenErr, "failed to delete user sessions")
		}

		if delErr := repoFactory.UserRepo().Delete(ctx, userID); delErr != nil {
			if errors.Is(delErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("failed to delete user")
			}

			return errors.Wrap(delErr, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute delete user transaction", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete user transaction")
	}

	return nil
}

// GetAddress returns the user's saved shipping address.
func (srv *profileService) GetAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to get address")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if user.Address == (entity.Address{}) {
		return nil, domainerrors.ErrAddressNotFound.WrapMessage("no address saved for user")
	}

	address := user.Address

	return &address, nil
}

// SaveAddress overwrites the user's shipping address after validating it.
func (srv *profileService) SaveAddress(ctx context.Context, userID uuid.UUID, input *usecase.SaveAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Saving address", slog.Any("userID", userID))

	address := entity.Address{
		Country: input.Country,
		City:    input.City,
		ZipCode: input.ZipCode,
		Street:  input.Street,
	}

	if err := validateAddress(address); err != nil {
		return nil, err
	}

	if err := srv.userRepo.UpdateAddress(ctx, userID, address); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to save address")
		}
		srv.log(ctx).Error("Failed to save address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save address")
	}

	return &address, nil
}

func validateAddress(address entity.Address) error {
	if !address.IsComplete() {
		return domainerrors.ErrAddressIncomplete.WrapMessage("address has empty fields")
	}
	if !zipCodePattern.MatchString(address.ZipCode) {
		return domainerrors.ErrInvalidZipCode.WrapMessage("zip code must match NN-NNN")
	}

	return nil
}
