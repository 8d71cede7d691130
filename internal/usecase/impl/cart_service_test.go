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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     svc,
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  3,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, input.ProductID).
		Return(&entity.Product{ID: input.ProductID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().
				AddUnits(ctx, input.UserID, input.ProductID, 3).
				Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.AddToCart(ctx, input))
}

func TestCartService_AddToCart_ZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  0,
	}

	err := fx.service.AddToCart(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartQuantityInvalid)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, input.ProductID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.AddToCart(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveItems_Clamped(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.RemoveItemsInput{
		UserID: userID,
		Items: []usecase.RemoveItem{
			{ProductID: productID, Quantity: 5},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			// Only two units held; removal is clamped, not an error.
			mockCartRepo.EXPECT().
				CountUnits(ctx, userID, productID).
				Return(2, nil)
			mockCartRepo.EXPECT().
				RemoveUnits(ctx, userID, productID, 5).
				Return(2, nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.RemoveItems(ctx, input))
}

func TestCartService_RemoveItems_BatchRollsBackOnFailure(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := usecase.RemoveItem{ProductID: uuid.New(), Quantity: 1}
	second := usecase.RemoveItem{ProductID: uuid.New(), Quantity: 2}
	input := &usecase.RemoveItemsInput{UserID: userID, Items: []usecase.RemoveItem{first, second}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockCartRepo.EXPECT().
				CountUnits(ctx, userID, first.ProductID).
				Return(1, nil)
			mockCartRepo.EXPECT().
				RemoveUnits(ctx, userID, first.ProductID, 1).
				Return(1, nil)
			mockCartRepo.EXPECT().
				CountUnits(ctx, userID, second.ProductID).
				Return(2, nil)
			mockCartRepo.EXPECT().
				RemoveUnits(ctx, userID, second.ProductID, 2).
				Return(0, errors.New("connection reset"))

			return fn(mockFactory)
		})

	err := fx.service.RemoveItems(ctx, input)

	require.Error(t, err)
}

func TestCartService_RemoveItems_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.RemoveItemsInput{
		UserID: uuid.New(),
		Items:  []usecase.RemoveItem{{ProductID: uuid.New(), Quantity: 0}},
	}

	err := fx.service.RemoveItems(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartQuantityInvalid)
}

func TestCartService_GetCart_TotalsDiscountedPrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.CartEntry{
		{Product: entity.Product{Price: 100, Discount: 25}, Quantity: 2}, // 150
		{Product: entity.Product{Price: 50, Discount: 0}, Quantity: 1},   // 50
	}

	fx.cartRepo.EXPECT().ListEntries(ctx, userID).Return(entries, nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, output.Entries, 2)
	assert.InDelta(t, 200.0, output.Total, 0.001)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ListEntries(ctx, userID).Return(nil, nil)

	output, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.Entries)
	assert.Zero(t, output.Total)
}

// TestCartService_AddRemoveLifecycle walks one product through the cart with a
// stateful repository stub: three units in, two out, one out, empty again.
func TestCartService_AddRemoveLifecycle(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := entity.Product{ID: productID, Price: 100, Discount: 25} // 75 per unit

	rows := 0

	stubCartRepo := mockRepo.NewMockCartRepository(t)
	stubCartRepo.EXPECT().
		AddUnits(ctx, userID, productID, mock.AnythingOfType("int")).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID, quantity int) error {
			rows += quantity

			return nil
		})
	stubCartRepo.EXPECT().
		CountUnits(ctx, userID, productID).
		RunAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (int, error) {
			return rows, nil
		})
	stubCartRepo.EXPECT().
		RemoveUnits(ctx, userID, productID, mock.AnythingOfType("int")).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID, limit int) (int, error) {
			removed := limit
			if rows < removed {
				removed = rows
			}
			rows -= removed

			return removed, nil
		})

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().CartRepo().Return(stubCartRepo)

			return fn(mockFactory)
		})

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&product, nil)
	fx.cartRepo.EXPECT().
		ListEntries(ctx, userID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.CartEntry, error) {
			if rows == 0 {
				return nil, nil
			}

			return []*entity.CartEntry{{Product: product, Quantity: rows}}, nil
		})

	require.NoError(t, fx.service.AddToCart(ctx, &usecase.AddToCartInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  3,
	}))

	output, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, output.Entries, 1)
	assert.Equal(t, 3, output.Entries[0].Quantity)
	assert.InDelta(t, 225.0, output.Total, 0.001)

	require.NoError(t, fx.service.RemoveItems(ctx, &usecase.RemoveItemsInput{
		UserID: userID,
		Items:  []usecase.RemoveItem{{ProductID: productID, Quantity: 2}},
	}))

	output, err = fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, output.Entries, 1)
	assert.Equal(t, 1, output.Entries[0].Quantity)
	assert.InDelta(t, 75.0, output.Total, 0.001)

	require.NoError(t, fx.service.RemoveItems(ctx, &usecase.RemoveItemsInput{
		UserID: userID,
		Items:  []usecase.RemoveItem{{ProductID: productID, Quantity: 1}},
	}))

	output, err = fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, output.Entries)
	assert.Zero(t, output.Total)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ClearByUser(ctx, userID).Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx, userID))
}
