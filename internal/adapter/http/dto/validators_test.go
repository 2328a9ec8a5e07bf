package dto

import (
	"errors"
	"testing"

	"currency-wallet/internal/core/domain"
	"currency-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountParam_Valid(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"100", "100"},
		{"0", "0"},
		{"1.50", "1.5"},
		{"0.01", "0.01"},
		{"12345.6789", "12345.6789"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			amount, err := ParseAmountParam(tt.raw)
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestParseAmountParam_Invalid(t *testing.T) {
	for _, raw := range []string{"", "-5", "+5", "1e3", ".5", "5.", "abc", "1,5", " 1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseAmountParam(raw)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "WAL_003", appErr.Code)
			assert.Equal(t, 422, appErr.HTTPStatus)
		})
	}
}

func TestParseCurrencyParam(t *testing.T) {
	code, err := ParseCurrencyParam("JPY")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyJPY, code)

	_, err = ParseCurrencyParam("XRP")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CUR_001", appErr.Code)
}
