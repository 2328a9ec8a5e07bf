package service

import (
	"context"

	"currency-wallet/internal/core/domain"
	"currency-wallet/internal/core/ports"
	"currency-wallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService. It orchestrates raw
// retrieval, local-currency conversion and guarded balance mutation; the
// mutual-exclusion guarantee for concurrent mutations lives in the store's
// conditional write, not here.
type WalletServiceImpl struct {
	store    ports.WalletStore
	registry ports.RateRegistry
	log      zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(store ports.WalletStore, registry ports.RateRegistry, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		store:    store,
		registry: registry,
		log:      log,
	}
}

// GetOriginalWallet returns stored balances exactly as persisted.
func (s *WalletServiceImpl) GetOriginalWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	return s.store.FetchRaw(ctx, userID)
}

// GetLocalCurrencyWallet converts every holding into the wallet's local
// currency and sums the result. Any single rate failure fails the whole
// call; there is no partial result.
func (s *WalletServiceImpl) GetLocalCurrencyWallet(ctx context.Context, userID string) (*domain.ConvertedWallet, error) {
	wallet, err := s.store.FetchRaw(ctx, userID)
	if err != nil {
		return nil, err
	}

	provider, err := s.registry.Provider(wallet.LocalCurrency)
	if err != nil {
		return nil, err
	}

	converted := make(map[domain.Currency]decimal.Decimal, len(wallet.Balances))
	total := decimal.Zero

	for code, balance := range wallet.Balances {
		rate, err := provider.GetRate(ctx, code)
		if err != nil {
			return nil, err
		}

		amount := balance.Mul(decimal.NewFromFloat(rate)).Round(2)
		converted[code] = amount
		// The running total is rounded after every addition as well as
		// at the end. Totals already shown to clients depend on it, so
		// the intermediate rounding stays.
		total = total.Add(amount).Round(2)
	}

	return &domain.ConvertedWallet{
		Balances: converted,
		Total:    total.Round(2),
	}, nil
}

// AddToWallet adds amount to a currency holding. Amount must be strictly
// positive.
func (s *WalletServiceImpl) AddToWallet(ctx context.Context, userID string, code domain.Currency, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}

	if err := s.store.ApplyDelta(ctx, userID, code, amount); err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("currency", string(code)).
		Str("amount", amount.String()).
		Msg("balance added")
	return nil
}

// SubtractFromWallet removes amount from a currency holding. An
// InsufficientBalance failure from the store propagates unchanged.
func (s *WalletServiceImpl) SubtractFromWallet(ctx context.Context, userID string, code domain.Currency, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}

	if err := s.store.ApplyDelta(ctx, userID, code, amount.Neg()); err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("currency", string(code)).
		Str("amount", amount.String()).
		Msg("balance subtracted")
	return nil
}
