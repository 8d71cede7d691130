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

// CartHandler holds dependencies for the cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// AddToCart inserts the requested number of unit rows in one transaction.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var input *usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "無效的購物車資料")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddToCart(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "已加入購物車",
		"success": true,
	})
}

// RemoveItems drops units across several products in one transaction.
func (h *CartHandler) RemoveItems(c echo.Context) error {
	var input *usecase.RemoveItemsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "無效的購物車資料")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveItems(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "已從購物車移除",
		"success": true,
	})
}

// GetCart returns the collapsed cart for ?userId=, cheapest line first.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return response.BindingError(c, "無效的使用者編號")
	}

	output, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartPayload(output))
}

type clearCartRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// ClearCart removes every unit row the user holds.
func (h *CartHandler) ClearCart(c echo.Context) error {
	var req clearCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "無效的購物車資料")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ClearCart(c.Request().Context(), req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "購物車已清空",
	})
}
