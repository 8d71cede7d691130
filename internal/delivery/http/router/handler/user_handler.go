package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the admin user management and the
// shipping address handlers.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// ListUsers returns every account. Password hashes never reach this layer.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": newUserPayloads(users),
	})
}

// GetUser returns a single account by path ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "無效的使用者編號")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": newUserPayload(user),
	})
}

// CreateUser handles the admin add-user form.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input *usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "無效的使用者資料")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user": newUserPayload(user),
	})
}

// UpdateProfile overwrites the profile fields present in the payload.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "無效的使用者編號")
	}

	var input *usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "無效的使用者資料")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": newUserPayload(user),
	})
}

type updateAddressRequest struct {
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Street  string `json:"street" validate:"required"`
}

// UpdateAddress overwrites only the address fields of an account.
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "無效的使用者編號")
	}

	var req updateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "無效的地址資料")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateUserInput{
		Country: &req.Country,
		City:    &req.City,
		ZipCode: &req.ZipCode,
		Street:  &req.Street,
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": newUserPayload(user),
	})
}

// DeleteUser removes an account; cart rows, comments and sessions cascade.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "無效的使用者編號")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "使用者已刪除",
	})
}

// GetAddress returns the user's saved shipping address.
func (h *UserHandler) GetAddress(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return response.BindingError(c, "無效的使用者編號")
	}

	address, err := h.uc.GetAddress(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"address": newAddressPayload(*address),
	})
}

type saveAddressRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	usecase.SaveAddressInput
}

// SaveAddress overwrites the user's shipping address.
func (h *UserHandler) SaveAddress(c echo.Context) error {
	var req saveAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "無效的地址資料")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.SaveAddress(c.Request().Context(), req.UserID, &req.SaveAddressInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"address": newAddressPayload(*address),
	})
}
