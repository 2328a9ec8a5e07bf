package dto

import (
	"regexp"

	"currency-wallet/internal/core/domain"
	"currency-wallet/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Amount path parameters must be plain non-negative decimals: no sign, no
// exponent, no leading dot. Positivity is enforced by the wallet service.
var amountRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeIDRe.MatchString(fl.Field().String())
}

// ParseAmountParam validates and parses the :amount path parameter.
func ParseAmountParam(raw string) (decimal.Decimal, error) {
	if !amountRe.MatchString(raw) {
		return decimal.Decimal{}, apperror.ErrInvalidAmount()
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperror.ErrInvalidAmount()
	}
	return amount, nil
}

// ParseCurrencyParam validates the :currency_code path parameter against
// the holding-currency enumeration.
func ParseCurrencyParam(raw string) (domain.Currency, error) {
	return domain.ParseCurrency(raw)
}
