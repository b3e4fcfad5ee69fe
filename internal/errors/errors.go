// Package errors provides the structured error type shared by the store,
// services, and HTTP layers. Handlers render AppError values as
// {"error":{"code","message"}} and never expose the wrapped internal error.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches another AppError by code, so a wrapped copy still satisfies
// errors.Is against its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Investment errors.
var (
	ErrInvestmentNotFound  = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrDuplicateInvestment = &AppError{Code: "DUPLICATE_INVESTMENT", Message: "An investment with this id already exists", StatusCode: http.StatusConflict}
)

// Record store errors.
var (
	ErrStorage         = &AppError{Code: "STORAGE_ERROR", Message: "Failed to save investments", StatusCode: http.StatusInternalServerError}
	ErrStoreUnreadable = &AppError{Code: "STORE_UNREADABLE", Message: "Investment data could not be read", StatusCode: http.StatusInternalServerError}
)

// Price lookup errors.
var (
	ErrPriceUnavailable     = &AppError{Code: "PRICE_UNAVAILABLE", Message: "Price data not available", StatusCode: http.StatusNotFound}
	ErrUnsupportedAssetType = &AppError{Code: "UNSUPPORTED_ASSET_TYPE", Message: "Unsupported asset type", StatusCode: http.StatusBadRequest}
)
