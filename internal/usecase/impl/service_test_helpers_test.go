package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 8,
			MaxLength: 72,
		},
		Admin: &config.AdminConfig{
			Email:    "admin@admin.com",
			Password: "admin",
		},
		Checkout: &config.CheckoutConfig{
			Currency: "PLN",
		},
	}

	return cfg
}
