package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_002", "Can't subtract more than balance", http.StatusBadRequest),
			expected: "[WAL_002] Can't subtract more than balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Wallet store unavailable", http.StatusServiceUnavailable, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Wallet store unavailable: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusServiceUnavailable, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WAL_001", "test", http.StatusNotFound)
	assert.Nil(t, appErr.Unwrap())
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"WalletNotFound", ErrWalletNotFound(), "WAL_001", 404},
		{"InsufficientBalance", ErrInsufficientBalance(), "WAL_002", 400},
		{"InvalidAmount", ErrInvalidAmount(), "WAL_003", 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestCurrencyErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidCurrency", ErrInvalidCurrency("XXX"), "CUR_001", 422},
		{"UnsupportedLocalCurrency", ErrUnsupportedLocalCurrency("GBP"), "CUR_002", 500},
		{"RateSourceUnavailable", ErrRateSourceUnavailable(fmt.Errorf("status 500")), "RATE_001", 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("redis: connection closed")
	storeErr := ErrStoreUnavailable(inner)
	assert.Equal(t, "SYS_001", storeErr.Code)
	assert.Equal(t, 503, storeErr.HTTPStatus)
	assert.True(t, errors.Is(storeErr, inner))

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_002", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
}
