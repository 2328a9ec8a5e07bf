package domain

import "github.com/shopspring/decimal"

// Wallet is a user's stored multi-currency holdings.
// Balances are always >= 0; the store's conditional write enforces it.
type Wallet struct {
	UserID        string                       `json:"user_id"`
	Balances      map[Currency]decimal.Decimal `json:"balances"`
	LocalCurrency LocalCurrency                `json:"local_currency"`
}

// ConvertedWallet is the derived local-currency view of a wallet.
// Not persisted; amounts are rounded to 2 decimal places.
type ConvertedWallet struct {
	Balances map[Currency]decimal.Decimal `json:"balances"`
	Total    decimal.Decimal              `json:"total"`
}
