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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart inserts one unit row per requested quantity in a single
// transaction, so the cart never gains a partial batch.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) error {
	srv.log(ctx).Debug("Adding to cart",
		slog.Any("userID", input.UserID),
		slog.Any("productID", input.ProductID),
		slog.Int("quantity", input.Quantity))

	if input.Quantity < 1 {
		return domainerrors.ErrCartQuantityInvalid.WrapMessage("quantity must be at least 1")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("failed to add to cart")
		}

		return errors.Wrap(err, "failed to find product by id")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CartRepo().AddUnits(ctx, input.UserID, input.ProductID, input.Quantity)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute add to cart transaction",
			slog.Any("userID", input.UserID),
			slog.Any("productID", input.ProductID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to execute add to cart transaction")
	}

	return nil
}

// RemoveItems removes units across several products in one transaction. The
// requested quantity per product is clamped to what the cart actually holds;
// any failure rolls the whole batch back.
func (srv *cartService) RemoveItems(ctx context.Context, input *usecase.RemoveItemsInput) error {
	srv.log(ctx).Debug("Removing cart items",
		slog.Any("userID", input.UserID),
		slog.Int("itemCount", len(input.Items)))

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return domainerrors.ErrCartQuantityInvalid.WrapMessage("quantity must be at least 1")
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		for _, item := range input.Items {
			held, countErr := cartRepo.CountUnits(ctx, input.UserID, item.ProductID)
			if countErr != nil {
				return errors.Wrap(countErr, "failed to count cart units")
			}
			if item.Quantity > held {
				srv.log(ctx).Debug("Remove request clamped to held units",
					slog.Any("productID", item.ProductID),
					slog.Int("requested", item.Quantity),
					slog.Int("held", held))
			}

			if _, removeErr := cartRepo.RemoveUnits(ctx, input.UserID, item.ProductID, item.Quantity); removeErr != nil {
				return errors.Wrap(removeErr, "failed to remove cart units")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute remove items transaction",
			slog.Any("userID", input.UserID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to execute remove items transaction")
	}

	return nil
}

// GetCart returns the cart collapsed to one entry per product, cheapest
// discounted price first, together with the running total.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	entries, err := srv.cartRepo.ListEntries(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list cart entries", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cart entries")
	}

	return &usecase.CartOutput{
		Entries: entries,
		Total:   entity.CartTotal(entries),
	}, nil
}

// ClearCart removes every unit row the user holds.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Debug("Clearing cart", slog.Any("userID", userID))

	if err := srv.cartRepo.ClearByUser(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
