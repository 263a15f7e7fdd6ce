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

// ---- Entity Lookup (BANK) ----

func ErrAccountNotFound() *AppError {
	return New("BANK_001", "Account not found", http.StatusNotFound)
}

func ErrBankNotFound() *AppError {
	return New("BANK_002", "Bank not found", http.StatusNotFound)
}

func ErrUserNotFound() *AppError {
	return New("BANK_003", "User not found", http.StatusNotFound)
}

func ErrTransactionNotFound() *AppError {
	return New("BANK_004", "Transaction not found", http.StatusNotFound)
}

// ---- Ledger Business Logic (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient funds on account", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrSameAccount() *AppError {
	return New("PAY_003", "Sender and receiver accounts must differ", http.StatusBadRequest)
}

func ErrInvalidCurrency() *AppError {
	return New("PAY_004", "Unknown currency", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// ErrDatabaseError wraps a store failure. Store failures are fatal for the
// operation in flight and are never retried by this core.
func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}
