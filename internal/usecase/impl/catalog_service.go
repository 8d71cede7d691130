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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the catalog, optionally filtered by category.
func (srv *catalogService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	var (
		products []*entity.Product
		err      error
	)

	if categoryID != nil {
		products, err = srv.productRepo.ListByCategory(ctx, *categoryID)
	} else {
		products, err = srv.productRepo.List(ctx)
	}

	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// SearchProducts returns products whose title contains the query, case-insensitively.
func (srv *catalogService) SearchProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	products, err := srv.productRepo.SearchByTitle(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to search products", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct returns the full product payload by ID.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("failed to get product")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("title", input.Title))

	product, err := srv.buildProduct(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("failed to create product")
		}
		srv.log(ctx).Error("Failed to create product", slog.String("title", input.Title), slog.Any("error", err))

		return nil, domainerrors.ErrProductCreationFailed.WrapMessage("failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// UpdateProduct overwrites an existing product. The cached rating column is
// untouched; it only moves through the comment flow.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", productID))

	product, err := srv.buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = productID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("failed to update product")
		}
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("failed to update product")
		}
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, domainerrors.ErrProductUpdateFailed.WrapMessage("failed to update product")
	}

	updated, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated product")
	}

	return updated, nil
}

// buildProduct validates the form payload and assembles the product entity.
// A structured specification wins over the legacy marker-delimited text.
func (srv *catalogService) buildProduct(input *usecase.ProductInput) (*entity.Product, error) {
	if input.Discount < 0 || input.Discount > 100 {
		return nil, domainerrors.ErrDiscountOutOfRange.WrapMessage("discount must be between 0 and 100")
	}

	specification := input.Specification
	if len(specification) == 0 && input.SpecificationText != "" {
		specification = entity.ParseSpecificationText(input.SpecificationText)
	}

	return &entity.Product{
		Title:         input.Title,
		Description:   input.Description,
		Specification: specification,
		Price:         input.Price,
		Discount:      input.Discount,
		CategoryID:    input.CategoryID,
		Subcategory:   input.Subcategory,
		Image:         input.Image,
	}, nil
}

// DeleteProduct removes a product; cart rows and comments go with it through
// the database cascades.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", productID))

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("failed to delete product")
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// ListCategories returns the static category lookup.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
