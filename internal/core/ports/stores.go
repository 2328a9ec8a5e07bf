//go:generate mockgen -source=stores.go -destination=mocks/stores_mock.go -package=mocks
package ports

import (
	"context"

	"currency-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletStore defines persistence operations for wallet records in the
// key-value store.
type WalletStore interface {
	// FetchRaw performs a point lookup by user id. Returns
	// apperror.ErrWalletNotFound when no record exists. No side effects.
	FetchRaw(ctx context.Context, userID string) (*domain.Wallet, error)

	// ApplyDelta atomically adds delta (positive or negative) to the
	// balance of the given currency, creating the balance field with
	// value delta when absent. Negative deltas are conditioned on
	// balance >= abs(delta) evaluated atomically with the write;
	// violation yields apperror.ErrInsufficientBalance. The store never
	// clamps and surfaces transient failures as ErrStoreUnavailable.
	ApplyDelta(ctx context.Context, userID string, code domain.Currency, delta decimal.Decimal) error

	// CreateWallet provisions a wallet record. Used by fixtures and the
	// local seed path; wallet creation is otherwise out-of-band.
	CreateWallet(ctx context.Context, wallet *domain.Wallet) error
}

// UserStore defines persistence operations for user records.
type UserStore interface {
	// GetByUsername returns the user record, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser provisions a user record (fixtures / local seed).
	CreateUser(ctx context.Context, user *domain.User) error
}
