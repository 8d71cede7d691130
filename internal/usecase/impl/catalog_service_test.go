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

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func TestCatalogService_ListProducts_All(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Title: "Keyboard"},
		{ID: uuid.New(), Title: "Mouse"},
	}

	fx.productRepo.EXPECT().List(ctx).Return(products, nil)

	got, err := fx.service.ListProducts(ctx, nil)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListProducts_ByCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), Title: "Keyboard", CategoryID: categoryID}}

	fx.productRepo.EXPECT().ListByCategory(ctx, categoryID).Return(products, nil)

	got, err := fx.service.ListProducts(ctx, &categoryID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, categoryID, got[0].CategoryID)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		SearchByTitle(ctx, "key").
		Return([]*entity.Product{{Title: "Keyboard"}}, nil)

	got, err := fx.service.SearchProducts(ctx, "key")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	got, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Title:       "Mechanical Keyboard",
		Description: "Clicky.",
		Price:       250,
		Discount:    10,
		CategoryID:  uuid.New(),
		Subcategory: "Keyboards",
		Specification: []entity.SpecificationGroup{
			{Key: "Layout", Values: []string{"ANSI"}},
		},
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
			assert.Equal(t, input.Title, product.Title)
			assert.Equal(t, input.Specification, product.Specification)
		}).
		Return(nil)

	got, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestCatalogService_CreateProduct_LegacySpecificationText(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Title:             "Monitor",
		Price:             900,
		CategoryID:        uuid.New(),
		SpecificationText: "*Panel*\nIPS\n27 inch\n*Refresh rate*\n144 Hz\n",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			require.Len(t, product.Specification, 2)
			assert.Equal(t, "Panel", product.Specification[0].Key)
			assert.Equal(t, []string{"IPS", "27 inch"}, product.Specification[0].Values)
			assert.Equal(t, "Refresh rate", product.Specification[1].Key)
		}).
		Return(nil)

	_, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
}

func TestCatalogService_CreateProduct_DiscountOutOfRange(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Title:      "Broken",
		Price:      10,
		Discount:   101,
		CategoryID: uuid.New(),
	}

	got, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountOutOfRange)
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Title:      "Orphan",
		Price:      10,
		CategoryID: uuid.New(),
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrCategoryNotFound)

	got, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.ProductInput{
		Title:      "Renamed",
		Price:      120,
		Discount:   0,
		CategoryID: uuid.New(),
	}

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, productID, product.ID)
		}).
		Return(nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Title: input.Title}, nil)

	got, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.ProductInput{Title: "Ghost", Price: 1, CategoryID: uuid.New()}

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	got, err := fx.service.UpdateProduct(ctx, productID, input)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, productID))
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: uuid.New(), Name: "Computers"},
		{ID: uuid.New(), Name: "Phones"},
	}

	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)

	got, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
