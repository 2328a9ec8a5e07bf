package dto

import (
	"currency-wallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TokenRequest binds the OAuth2-style password form posted to /token.
type TokenRequest struct {
	Username string `form:"username" binding:"required,safe_id"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the response body for a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
}

// OriginalWalletResponse carries stored balances without conversion.
// Amounts serialize as decimal strings.
type OriginalWalletResponse struct {
	Balances map[domain.Currency]decimal.Decimal `json:"balances"`
}

// ConvertedWalletResponse carries the local-currency view of a wallet.
type ConvertedWalletResponse struct {
	Balances map[domain.Currency]decimal.Decimal `json:"balances"`
	Total    decimal.Decimal                     `json:"total"`
}
