package handler

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ListProducts_All(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	products := []*entity.Product{
		{ID: uuid.New(), Title: "Keyboard", Price: 250},
		{ID: uuid.New(), Title: "Mouse", Price: 90},
	}
	uc.EXPECT().ListProducts(mock.Anything, (*uuid.UUID)(nil)).Return(products, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/products", nil)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	payload, ok := data["products"].([]any)
	require.True(t, ok)
	assert.Len(t, payload, 2)
}

func TestProductHandler_ListProducts_ByCategory(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	categoryID := uuid.New()
	uc.EXPECT().
		ListProducts(mock.Anything, &categoryID).
		Return([]*entity.Product{{ID: uuid.New(), CategoryID: categoryID}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/products?category="+categoryID.String(), nil)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ListProducts_MalformedCategory(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/api/products?category=not-a-uuid", nil)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_SearchProducts(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	uc.EXPECT().
		SearchProducts(mock.Anything, "key").
		Return([]*entity.Product{{Title: "Keyboard"}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/products/search?q=key", nil)

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	productID := uuid.New()
	uc.EXPECT().GetProduct(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

	c, _ := newJSONContext(t, http.MethodGet, "/api/products/"+productID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	err := h.GetProduct(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductHandler_CreateProduct_Success(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	created := &entity.Product{ID: uuid.New(), Title: "Monitor", Price: 900}
	uc.EXPECT().
		CreateProduct(mock.Anything, mock.AnythingOfType("*usecase.ProductInput")).
		Run(func(ctx context.Context, input *usecase.ProductInput) {
			assert.Equal(t, "Monitor", input.Title)
			assert.Equal(t, "*Panel*\nIPS\n", input.SpecificationText)
		}).
		Return(created, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/products", map[string]any{
		"title":             "Monitor",
		"price":             900,
		"categoryId":        uuid.New().String(),
		"specificationText": "*Panel*\nIPS\n",
	})

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeEnvelope(t, rec)
	payload, ok := data["product"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Monitor", payload["title"])
}

func TestProductHandler_DeleteProduct_Success(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	productID := uuid.New()
	uc.EXPECT().DeleteProduct(mock.Anything, productID).Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/products/"+productID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ListCategories(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListCategories(mock.Anything).
		Return([]*entity.Category{{ID: uuid.New(), Name: "Computers"}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/categories", nil)

	require.NoError(t, h.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	payload, ok := data["categories"].([]any)
	require.True(t, ok)
	assert.Len(t, payload, 1)
}
