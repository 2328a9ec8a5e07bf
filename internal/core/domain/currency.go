package domain

import "currency-wallet/pkg/apperror"

// Currency is a holding currency a wallet can store a balance in.
// The set is closed; anything outside it is rejected at the boundary.
type Currency string

const (
	CurrencyJPY Currency = "JPY"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// LocalCurrency is a conversion target. Holdings are converted into the
// wallet's local currency for display. Currently PLN only.
type LocalCurrency string

const LocalCurrencyPLN LocalCurrency = "PLN"

// Currencies lists every valid holding currency.
func Currencies() []Currency {
	return []Currency{CurrencyJPY, CurrencyEUR, CurrencyUSD}
}

// ParseCurrency validates a raw currency code against the holding set.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyJPY, CurrencyEUR, CurrencyUSD:
		return Currency(code), nil
	}
	return "", apperror.ErrInvalidCurrency(code)
}

// ParseLocalCurrency validates a raw local currency code.
func ParseLocalCurrency(code string) (LocalCurrency, error) {
	if LocalCurrency(code) == LocalCurrencyPLN {
		return LocalCurrencyPLN, nil
	}
	return "", apperror.ErrUnsupportedLocalCurrency(code)
}
