package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     svc,
		txManager:   txManager,
		commentRepo: commentRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func TestReviewService_ListComments_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	comments := []*entity.Comment{
		{ID: uuid.New(), ProductID: productID, Text: "Great", Rating: 5, AuthorFirstName: "Ada"},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.commentRepo.EXPECT().ListByProduct(ctx, productID).Return(comments, nil)

	got, err := fx.service.ListComments(ctx, productID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].AuthorFirstName)
}

func TestReviewService_ListComments_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	got, err := fx.service.ListComments(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_AddComment_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddCommentInput{
		UserID:    userID,
		ProductID: productID,
		Text:      "Solid build quality.",
		Rating:    4,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FirstName: "Ada", LastName: "Lovelace"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCommentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Comment")).
				Run(func(ctx context.Context, comment *entity.Comment) {
					comment.ID = uuid.New()
				}).
				Return(nil)
			mockCommentRepo.EXPECT().
				AverageRatingByProduct(ctx, productID).
				Return(4.3, nil)
			mockProductRepo.EXPECT().
				UpdateRating(ctx, productID, 4.3).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.AddComment(ctx, input)

	require.NoError(t, err)
	assert.InDelta(t, 4.3, output.ProductRating, 0.001)
	assert.Equal(t, "Ada", output.Comment.AuthorFirstName)
	assert.Equal(t, "Lovelace", output.Comment.AuthorLastName)
}

// A constraint mapped inside the transaction must reach the caller intact so
// the handler can translate it, instead of collapsing into a generic failure.
func TestReviewService_AddComment_ConstraintErrorSurfaces(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddCommentInput{
		UserID:    userID,
		ProductID: productID,
		Text:      "Looks fine.",
		Rating:    4,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FirstName: "Ada", LastName: "Lovelace"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCommentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Comment")).
				Return(domainerrors.ErrRatingOutOfRange.WrapMessage("failed to create comment"))

			return fn(mockFactory)
		})

	output, err := fx.service.AddComment(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
}

func TestReviewService_AddComment_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.AddCommentInput{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Text:      "??",
		Rating:    6,
	}

	output, err := fx.service.AddComment(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
}

func TestReviewService_AddComment_ZeroRatingRejected(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.AddCommentInput{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Rating:    0,
	}

	_, err := fx.service.AddComment(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
}

func TestReviewService_RecomputeRating_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCommentRepo.EXPECT().
				AverageRatingByProduct(ctx, productID).
				Return(4.7, nil)
			mockProductRepo.EXPECT().
				UpdateRating(ctx, productID, 4.7).
				Return(nil)

			return fn(mockFactory)
		})

	rating, err := fx.service.RecomputeRating(ctx, productID)

	require.NoError(t, err)
	assert.InDelta(t, 4.7, rating, 0.001)
}

func TestReviewService_RecomputeRating_NoComments(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockCommentRepo.EXPECT().
				AverageRatingByProduct(ctx, productID).
				Return(0.0, nil)
			mockProductRepo.EXPECT().
				UpdateRating(ctx, productID, 0.0).
				Return(nil)

			return fn(mockFactory)
		})

	rating, err := fx.service.RecomputeRating(ctx, productID)

	require.NoError(t, err)
	assert.Zero(t, rating)
}
