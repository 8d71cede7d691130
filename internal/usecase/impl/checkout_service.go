package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Payment form patterns. The card data is validated for shape only and is
// never stored or forwarded anywhere.
var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3}$`)
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	currency      string
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := ""
	if params.Config != nil && params.Config.Checkout != nil {
		currency = params.Config.Checkout.Currency
	}

	return &checkoutService{
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		currency:      currency,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns the user's cart into an order receipt. Address persistence,
// cart totaling and cart clearing run in one transaction; a failure anywhere
// leaves both the address and the cart as they were.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", input.UserID))

	address := entity.Address{
		Country: input.Country,
		City:    input.City,
		ZipCode: input.ZipCode,
		Street:  input.Street,
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	if err := validatePayment(input.CardNumber, input.Expiry, input.CVC); err != nil {
		return nil, err
	}

	var total float64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		cartRepo := repoFactory.CartRepo()

		if addrErr := userRepo.UpdateAddress(ctx, input.UserID, address); addrErr != nil {
			if errors.Is(addrErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("failed to save shipping address")
			}

			return errors.Wrap(addrErr, "failed to save shipping address")
		}

		entries, listErr := cartRepo.ListEntries(ctx, input.UserID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list cart entries")
		}
		if len(entries) == 0 {
			return domainerrors.ErrCartEmpty.WrapMessage("checkout with empty cart")
		}

		total = entity.CartTotal(entries)

		if clearErr := cartRepo.ClearByUser(ctx, input.UserID); clearErr != nil {
			return errors.Wrap(clearErr, "failed to clear cart after checkout")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute checkout transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	orderID := uuid.New()

	// The order is already settled and the cart cleared; a failed QR render
	// must not lose it. The confirmation ships without the image instead.
	receiptQR, qrErr := srv.qrcodeService.GenerateReceiptQR(orderID, total, srv.currency)
	if qrErr != nil {
		srv.log(ctx).Warn("Failed to generate receipt QR code", slog.Any("orderID", orderID), slog.Any("error", qrErr))
		receiptQR = nil
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Any("userID", input.UserID),
		slog.Any("orderID", orderID),
		slog.Float64("total", total))

	return &usecase.CheckoutOutput{
		OrderID:   orderID,
		Total:     total,
		Currency:  srv.currency,
		ReceiptQR: receiptQR,
	}, nil
}

func validatePayment(cardNumber, expiry, cvc string) error {
	digits := strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if !cardNumberPattern.MatchString(digits) {
		return domainerrors.ErrInvalidCardNumber.WrapMessage("card number must be 16 digits")
	}

	if !cardExpiryPattern.MatchString(expiry) {
		return domainerrors.ErrCardExpired.WrapMessage("expiry must be in MM/YY form")
	}
	if cardExpiredAt(expiry, time.Now()) {
		return domainerrors.ErrCardExpired.WrapMessage("card expiry date is in the past")
	}

	if !cardCVCPattern.MatchString(cvc) {
		return domainerrors.ErrInvalidCVC.WrapMessage("cvc must be 3 digits")
	}

	return nil
}

// cardExpiredAt reports whether an MM/YY expiry lies before the given moment.
// A card expires at the end of its named month.
func cardExpiredAt(expiry string, now time.Time) bool {
	parsed, err := time.Parse("01/06", expiry)
	if err != nil {
		return true
	}

	endOfMonth := parsed.AddDate(0, 1, 0)

	return !now.Before(endOfMonth)
}
