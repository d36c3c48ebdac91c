package errors

import (
	"coffissimo/internal/errors"
)

// Exit codes reported by the command-line driver for each error class.
const (
	ExitCodeInternal    = 1
	ExitCodeInvalid     = 2
	ExitCodeNotFound    = 3
	ExitCodeConflict    = 4
	ExitCodeCancelled   = 5
	ExitCodeUnavailable = 6
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ExitCode() int     // Process exit code for the CLI driver
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	exitCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(exitCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		exitCode:  exitCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ExitCode returns the process exit code
func (e *BaseError) ExitCode() int {
	return e.exitCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		exitCode:  e.exitCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so values produced by
// WithDetails still satisfy errors.Is against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Branch-related errors
	ErrBranchNotFound = NewBaseError(
		ExitCodeNotFound,
		"BRANCH_NOT_FOUND",
		"branch not found",
		"",
	)

	ErrBranchNotSelected = NewBaseError(
		ExitCodeInvalid,
		"BRANCH_NOT_SELECTED",
		"please select a pickup branch first",
		"",
	)

	ErrBranchClosed = NewBaseError(
		ExitCodeUnavailable,
		"BRANCH_CLOSED",
		"the selected branch is currently closed",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		ExitCodeNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		ExitCodeUnavailable,
		"PRODUCT_UNAVAILABLE",
		"product is not available at this branch",
		"",
	)

	ErrGrindNotOffered = NewBaseError(
		ExitCodeInvalid,
		"GRIND_NOT_OFFERED",
		"grind is not offered for this product",
		"",
	)

	ErrNotSubscribable = NewBaseError(
		ExitCodeInvalid,
		"NOT_SUBSCRIBABLE",
		"product is not available on subscription",
		"",
	)

	ErrUnknownPlan = NewBaseError(
		ExitCodeInvalid,
		"UNKNOWN_PLAN",
		"unknown subscription frequency",
		"",
	)

	// Cart-related errors
	ErrInvalidQuantity = NewBaseError(
		ExitCodeInvalid,
		"INVALID_QUANTITY",
		"quantity must be at least 1",
		"",
	)

	ErrCartEmpty = NewBaseError(
		ExitCodeConflict,
		"CART_EMPTY",
		"your cart is empty",
		"",
	)

	ErrPickupNotSelected = NewBaseError(
		ExitCodeInvalid,
		"PICKUP_NOT_SELECTED",
		"choose pickup before adding products",
		"",
	)

	// Checkout-related errors
	ErrInvalidCheckout = NewBaseError(
		ExitCodeInvalid,
		"INVALID_CHECKOUT",
		"checkout details are invalid",
		"",
	)

	ErrPaymentCancelled = NewBaseError(
		ExitCodeCancelled,
		"PAYMENT_CANCELLED",
		"payment was cancelled",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		ExitCodeNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		ExitCodeInternal,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)
