// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"bites/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Cart and checkout errors; all recoverable from the customer's side.
	ErrCanteenClosed = NewBaseError(
		http.StatusConflict,
		"CANTEEN_CLOSED",
		"The canteen is closed right now",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrDeliveryLocationRequired = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_LOCATION_REQUIRED",
		"Please provide a delivery location within campus",
		"",
	)

	ErrUnknownMenuItem = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_MENU_ITEM",
		"That item is not on the menu",
		"",
	)

	ErrInvalidFulfillmentMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FULFILLMENT_MODE",
		"Fulfillment mode must be pickup or delivery",
		"",
	)

	// Order lifecycle errors.
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"No such order",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Order status must be received, preparing or ready",
		"",
	)

	ErrStatusRegression = NewBaseError(
		http.StatusConflict,
		"STATUS_REGRESSION",
		"Order status can only move forward",
		"",
	)

	// Session errors.
	ErrProfileIncomplete = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_INCOMPLETE",
		"Name and UID are both required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
