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

// CommentHandler holds dependencies for the review handlers.
type CommentHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

// ListComments returns the comments of ?productId= joined with author names.
func (h *CommentHandler) ListComments(c echo.Context) error {
	productID, err := uuid.Parse(c.QueryParam("productId"))
	if err != nil {
		return response.BindingError(c, "無效的商品編號")
	}

	comments, err := h.uc.ListComments(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"comments": newCommentPayloads(comments),
	})
}

// AddComment stores a review and refreshes the product's cached rating in
// the same transaction.
func (h *CommentHandler) AddComment(c echo.Context) error {
	var input *usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "無效的留言資料")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddComment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": "留言已送出",
		"comment": newCommentPayload(output.Comment),
		"rating":  output.ProductRating,
	})
}

// RecomputeRating re-derives the product's rating from its comments,
// ignoring any client-supplied value.
func (h *CommentHandler) RecomputeRating(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "無效的商品編號")
	}

	rating, err := h.uc.RecomputeRating(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"rating":  rating,
	})
}
