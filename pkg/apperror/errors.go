package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Business Logic (WAL) ----

func ErrWalletNotFound() *AppError {
	return New("WAL_001", "Wallet not found", http.StatusNotFound)
}

func ErrInsufficientBalance() *AppError {
	return New("WAL_002", "Can't subtract more than balance", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_003", "Amount must be a positive decimal", http.StatusUnprocessableEntity)
}

// ---- Currency & Conversion (CUR / RATE) ----

func ErrInvalidCurrency(code string) *AppError {
	return New("CUR_001", fmt.Sprintf("Unsupported currency %q", code), http.StatusUnprocessableEntity)
}

func ErrUnsupportedLocalCurrency(code string) *AppError {
	return New("CUR_002", fmt.Sprintf("No exchange rate provider for local currency %q", code), http.StatusInternalServerError)
}

func ErrRateSourceUnavailable(err error) *AppError {
	return Wrap("RATE_001", "Could not retrieve exchange rate information", http.StatusServiceUnavailable, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Incorrect username or password", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Could not validate credentials", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrStoreUnavailable(err error) *AppError {
	return Wrap("SYS_001", "Wallet store unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error (malformed path or form input).
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusUnprocessableEntity)
}
