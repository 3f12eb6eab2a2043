package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is authenticated but not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure whose details must not surface to the caller.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a transaction amount at or below the policy minimum.
var ErrInvalidAmount = errors.New("amount must exceed the minimum transaction amount")

// ErrInsufficientFunds indicates a debit that would exceed the account balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidTransfer indicates a transfer with a missing or unresolvable counterpart account.
var ErrInvalidTransfer = errors.New("invalid transfer counterpart")

// ErrSameAccountTransfer indicates a transfer whose counterpart is the source account itself.
var ErrSameAccountTransfer = errors.New("cannot transfer to the same account")

// AppError wraps an underlying error with a status code and a safe message.
// The message is what callers may see; the wrapped error stays server-side.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that also matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
