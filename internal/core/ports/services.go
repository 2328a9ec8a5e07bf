//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks
package ports

import (
	"context"
	"time"

	"currency-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletService orchestrates wallet retrieval, conversion and guarded
// balance mutation.
type WalletService interface {
	// GetOriginalWallet returns stored balances without conversion.
	GetOriginalWallet(ctx context.Context, userID string) (*domain.Wallet, error)

	// GetLocalCurrencyWallet converts every holding into the wallet's
	// local currency and returns the per-currency view plus total.
	GetLocalCurrencyWallet(ctx context.Context, userID string) (*domain.ConvertedWallet, error)

	// AddToWallet adds amount (> 0) to a currency holding.
	AddToWallet(ctx context.Context, userID string, code domain.Currency, amount decimal.Decimal) error

	// SubtractFromWallet removes amount (> 0) from a currency holding,
	// failing with ErrInsufficientBalance when the holding is too small.
	SubtractFromWallet(ctx context.Context, userID string, code domain.Currency, amount decimal.Decimal) error
}

// AuthService validates user credentials.
type AuthService interface {
	// Authenticate verifies username/password and returns the user, or
	// apperror.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	Generate(userID string) (token string, expiresAt time.Time, err error)
	// Validate returns the user id carried by the token.
	Validate(token string) (userID string, err error)
}

// RateProvider converts one unit of a holding currency into the
// provider's fixed local currency.
type RateProvider interface {
	// GetRate returns a positive rate for the given currency, or
	// ErrInvalidCurrency / ErrRateSourceUnavailable.
	GetRate(ctx context.Context, code domain.Currency) (float64, error)

	// LocalCurrency is the fixed conversion target of this provider.
	LocalCurrency() domain.LocalCurrency

	// Name identifies the provider for logging.
	Name() string
}

// RateRegistry maps a local currency to the provider converting into it.
type RateRegistry interface {
	// Provider fails with ErrUnsupportedLocalCurrency when no provider
	// is registered for the given local currency.
	Provider(local domain.LocalCurrency) (RateProvider, error)
}

// SecretProvider retrieves named secrets (e.g. the JWT signing key).
type SecretProvider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// HashService hashes and verifies passwords.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}
