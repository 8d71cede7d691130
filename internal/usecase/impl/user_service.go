// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

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

const (
	defaultFirstName = "New"
	defaultLastName  = "User"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	adminEmail       string
	adminPassword    string
	passwordMinLen   int
	passwordMaxLen   int
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}

	if params.Config != nil && params.Config.Admin != nil {
		srv.adminEmail = params.Config.Admin.Email
		srv.adminPassword = params.Config.Admin.Password
	}
	if params.Config != nil && params.Config.PasswordStrength != nil {
		srv.passwordMinLen = params.Config.PasswordStrength.MinLength
		srv.passwordMaxLen = params.Config.PasswordStrength.MaxLength
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken produces the SHA-256 hex digest under which refresh tokens are stored.
// The raw token never touches the database.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.validatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User
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
		if newUser.FirstName == "" {
			newUser.FirstName = defaultFirstName
		}
		if newUser.LastName == "" {
			newUser.LastName = defaultLastName
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}

		if authErr := authRepo.CreateAuthentication(ctx, newAuth); authErr != nil {
			return errors.Wrap(authErr, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) validatePasswordStrength(password string) error {
	if srv.passwordMinLen > 0 && len(password) < srv.passwordMinLen {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too short")
	}
	if srv.passwordMaxLen > 0 && len(password) > srv.passwordMaxLen {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too long")
	}

	return nil
}

// Login orchestrates the user login process. The configured sentinel
// credentials bypass the stored credential check and always yield the admin role.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	if srv.isSentinelLogin(input.Email, input.Password) {
		return srv.loginAsAdmin(ctx, input.Email)
	}

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderEmail, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	roles := srv.rolesFor(loggedInUser.Email)

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, roles.ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		User:         loggedInUser,
		Roles:        roles.ToStrings(),
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

func (srv *userService) isSentinelLogin(email, password string) bool {
	return srv.adminEmail != "" && email == srv.adminEmail && password == srv.adminPassword
}

// loginAsAdmin handles the sentinel credentials. When a matching account row
// exists the session is bound to it; otherwise a synthetic account payload is
// returned and no session row is written.
func (srv *userService) loginAsAdmin(ctx context.Context, email string) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Sentinel admin login", slog.String("email", email))

	roles := entity.Roles{entity.RoleUser, entity.RoleAdmin}

	adminUser, err := srv.userRepo.FindByEmail(ctx, email)
	persisted := true
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find admin user by email")
		}

		persisted = false
		adminUser = &entity.User{
			ID:        uuid.New(),
			Email:     email,
			FirstName: "Store",
			LastName:  "Admin",
		}
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(adminUser.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// A session row needs a user row behind its foreign key; the synthetic
	// admin identity lives only inside the signed tokens.
	if persisted {
		if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, adminUser.ID, refreshTokenString); err != nil {
			return nil, errors.Wrap(err, "failed to create refresh token during admin login")
		}
	}

	return &usecase.LoginOutput{
		User:         adminUser,
		Roles:        roles.ToStrings(),
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// rolesFor derives the role set from the account email. The sentinel email
// carries the admin role even on a regular password login.
func (srv *userService) rolesFor(email string) entity.Roles {
	roles := entity.Roles{entity.RoleUser}
	if srv.adminEmail != "" && email == srv.adminEmail {
		roles = append(roles, entity.RoleAdmin)
	}

	return roles
}

func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken rotates a session: it validates the presented refresh token,
// issues a new token pair and replaces the stored session row atomically.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("token is not a refresh token")
	}

	oldTokenHash := hashToken(input.RefreshToken)

	var newAccessToken, newRefreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Verify the refresh token exists in the database.
		if _, findErr := refreshRepo.FindRefreshTokenByHash(ctx, oldTokenHash); findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) || errors.Is(findErr, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}

		// 2. Fetch user and re-derive roles instead of trusting the old claims.
		user, findUserErr := userRepo.FindByID(ctx, claims.UserID)
		if findUserErr != nil {
			return errors.Wrap(findUserErr, "failed to find user")
		}
		roles := srv.rolesFor(user.Email)

		// 3. Generate the replacement pair.
		var genErr error
		newAccessToken, newRefreshToken, genErr = srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
		if genErr != nil {
			return errors.Wrap(genErr, "failed to generate new token pair")
		}

		if storeErr := srv.storeRefreshToken(ctx, refreshRepo, user.ID, newRefreshToken); storeErr != nil {
			return storeErr
		}

		// 4. Retire the presented token. A failed delete leaves a dangling
		// session row that expires on its own, so it is only logged.
		if delErr := refreshRepo.DeleteRefreshTokenByHash(ctx, oldTokenHash); delErr != nil {
			srv.log(ctx).Warn("Failed to delete rotated refresh token", slog.Any("error", delErr))
		}

		// 5. Sweep every expired session row while a transaction is open
		// anyway. The rotation does not depend on the sweep.
		if purgeErr := refreshRepo.DeleteExpiredRefreshTokens(ctx); purgeErr != nil {
			srv.log(ctx).Warn("Failed to purge expired refresh tokens", slog.Any("error", purgeErr))
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := hashToken(input.RefreshToken)

	// Single operation - use direct repository instance
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetMe returns the account of the authenticated user.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting current user", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to get current user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
