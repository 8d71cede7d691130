package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns all comments of a product, newest first.
func (srv *reviewService) ListComments(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("failed to list comments")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	comments, err := srv.commentRepo.ListByProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// AddComment inserts the comment and refreshes the product's cached rating in
// one transaction, so no reader ever sees the comment without its rating effect.
func (srv *reviewService) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*usecase.AddCommentOutput, error) {
	srv.log(ctx).Debug("Adding comment",
		slog.Any("userID", input.UserID),
		slog.Any("productID", input.ProductID),
		slog.Int("rating", input.Rating))

	comment := &entity.Comment{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Text:      input.Text,
		Rating:    input.Rating,
	}
	if !comment.IsRatingValid() {
		return nil, domainerrors.ErrRatingOutOfRange.WrapMessage("rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("failed to add comment")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	author, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to add comment")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var newRating float64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()
		productRepo := repoFactory.ProductRepo()

		if createErr := commentRepo.Create(ctx, comment); createErr != nil {
			return errors.Wrap(createErr, "failed to create comment")
		}

		avg, avgErr := commentRepo.AverageRatingByProduct(ctx, input.ProductID)
		if avgErr != nil {
			return errors.Wrap(avgErr, "failed to compute average rating")
		}

		if updateErr := productRepo.UpdateRating(ctx, input.ProductID, avg); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update product rating")
		}

		newRating = avg

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute add comment transaction",
			slog.Any("productID", input.ProductID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add comment transaction")
	}

	comment.AuthorFirstName = author.FirstName
	comment.AuthorLastName = author.LastName

	srv.log(ctx).Debug("Comment added", slog.Any("commentID", comment.ID), slog.Float64("rating", newRating))

	return &usecase.AddCommentOutput{
		Comment:       comment,
		ProductRating: newRating,
	}, nil
}

// RecomputeRating recalculates the cached rating from the product's comments
// and persists it, ignoring whatever value the caller may have supplied.
func (srv *reviewService) RecomputeRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	srv.log(ctx).Info("Recomputing product rating", slog.Any("productID", productID))

	var rating float64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()
		productRepo := repoFactory.ProductRepo()

		avg, avgErr := commentRepo.AverageRatingByProduct(ctx, productID)
		if avgErr != nil {
			return errors.Wrap(avgErr, "failed to compute average rating")
		}

		if updateErr := productRepo.UpdateRating(ctx, productID, avg); updateErr != nil {
			if errors.Is(updateErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("failed to recompute rating")
			}

			return errors.Wrap(updateErr, "failed to update product rating")
		}

		rating = avg

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute recompute rating transaction",
			slog.Any("productID", productID),
			slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to execute recompute rating transaction")
	}

	return rating, nil
}
