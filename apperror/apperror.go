// Package apperror defines a centralized system for application-specific errors.
// Every failure raised by the auth and payroll pipelines is an *AppError carrying
// one member of the error taxonomy; anything else is classified by Classify.
// It's similar in concept to Nest.js's Exception Filters, where you can catch specific
// error types and customize the HTTP response.
package apperror

import (
	"errors"
	"fmt"
	// `net/http` is used for HTTP status codes.
	"net/http"
)

// ErrorType is an enumeration (using `iota`) of the error taxonomy.
type ErrorType int

const (
	// InternalError is the catch-all for unexpected failures (the zero value).
	InternalError ErrorType = iota
	// MissingFieldsError is returned when a required input is absent or blank
	MissingFieldsError
	// WeakPasswordError is returned when a password does not meet the length rules
	WeakPasswordError
	// EmailTakenError is returned when registering an email that already exists
	EmailTakenError
	// InvalidCredentialsError covers both unknown email and wrong password
	InvalidCredentialsError
	// MissingTokenError is returned when no bearer credential is present
	MissingTokenError
	// InvalidTokenError is returned for malformed or badly signed tokens
	InvalidTokenError
	// ExpiredTokenError is returned for tokens past their expiry
	ExpiredTokenError
	// InvalidSalaryError is returned for non-numeric or non-positive salaries
	InvalidSalaryError
	// InvalidDateFormatError is returned for dates that are not YYYY-MM-DD
	InvalidDateFormatError
	// NotFoundError represents a missing (or not owned) resource
	NotFoundError
	// UserNotFoundError is returned when an authenticated user no longer exists
	UserNotFoundError
	// DuplicateResourceError represents a store-level unique constraint violation
	DuplicateResourceError
	// InvalidReferenceError represents a store-level foreign key violation
	InvalidReferenceError
	// BadRequestError represents a request body that could not be decoded or does not fit the schema
	BadRequestError
)

// AppError is a custom error type for the application
// It also allows wrapping an underlying error (`Err`) for more detailed debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error returns the string representation of the error, satisfying the `error` interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so `errors.Is` and `errors.As` can inspect the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type
func (e *AppError) StatusCode() int {
	switch e.Type {
	case MissingFieldsError, WeakPasswordError, InvalidSalaryError,
		InvalidDateFormatError, InvalidReferenceError, BadRequestError:
		return http.StatusBadRequest
	case InvalidCredentialsError, MissingTokenError:
		return http.StatusUnauthorized
	case InvalidTokenError, ExpiredTokenError:
		// A credential was presented but could not be accepted.
		return http.StatusForbidden
	case NotFoundError, UserNotFoundError:
		return http.StatusNotFound
	case EmailTakenError, DuplicateResourceError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the stable, machine-readable code sent to API clients.
func (e *AppError) Code() string {
	switch e.Type {
	case MissingFieldsError:
		return "MISSING_FIELDS"
	case WeakPasswordError:
		return "WEAK_PASSWORD"
	case EmailTakenError:
		return "EMAIL_TAKEN"
	case InvalidCredentialsError:
		return "INVALID_CREDENTIALS"
	case MissingTokenError:
		return "MISSING_TOKEN"
	case InvalidTokenError:
		return "INVALID_TOKEN"
	case ExpiredTokenError:
		return "EXPIRED_TOKEN"
	case InvalidSalaryError:
		return "INVALID_SALARY"
	case InvalidDateFormatError:
		return "INVALID_DATE_FORMAT"
	case NotFoundError:
		return "NOT_FOUND"
	case UserNotFoundError:
		return "USER_NOT_FOUND"
	case DuplicateResourceError:
		return "DUPLICATE_RESOURCE"
	case InvalidReferenceError:
		return "INVALID_REFERENCE"
	case BadRequestError:
		return "BAD_REQUEST"
	default:
		return "INTERNAL"
	}
}

// NewAppError creates a new AppError. This is a generic constructor.
// This function acts as a factory for `AppError` instances.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// Constructor functions for specific error types.
// `NewNotFoundError("message", nil)` reads better than `NewAppError(NotFoundError, "message", nil)`.

// NewMissingFieldsError creates a new MissingFieldsError
func NewMissingFieldsError(message string) *AppError {
	return NewAppError(MissingFieldsError, message, nil)
}

// NewWeakPasswordError creates a new WeakPasswordError
func NewWeakPasswordError(message string) *AppError {
	return NewAppError(WeakPasswordError, message, nil)
}

// NewEmailTakenError creates a new EmailTakenError
func NewEmailTakenError(message string, underlyingError error) *AppError {
	return NewAppError(EmailTakenError, message, underlyingError)
}

// NewInvalidCredentialsError creates a new InvalidCredentialsError
func NewInvalidCredentialsError() *AppError {
	return NewAppError(InvalidCredentialsError, "invalid email or password", nil)
}

// NewMissingTokenError creates a new MissingTokenError
func NewMissingTokenError(message string) *AppError {
	return NewAppError(MissingTokenError, message, nil)
}

// NewInvalidTokenError creates a new InvalidTokenError
func NewInvalidTokenError(message string, underlyingError error) *AppError {
	return NewAppError(InvalidTokenError, message, underlyingError)
}

// NewExpiredTokenError creates a new ExpiredTokenError
func NewExpiredTokenError(underlyingError error) *AppError {
	return NewAppError(ExpiredTokenError, "token has expired, please log in again", underlyingError)
}

// NewInvalidSalaryError creates a new InvalidSalaryError
func NewInvalidSalaryError(message string) *AppError {
	return NewAppError(InvalidSalaryError, message, nil)
}

// NewInvalidDateFormatError creates a new InvalidDateFormatError
func NewInvalidDateFormatError(message string) *AppError {
	return NewAppError(InvalidDateFormatError, message, nil)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewUserNotFoundError creates a new UserNotFoundError
func NewUserNotFoundError(message string) *AppError {
	return NewAppError(UserNotFoundError, message, nil)
}

// NewDuplicateResourceError creates a new DuplicateResourceError
func NewDuplicateResourceError(underlyingError error) *AppError {
	return NewAppError(DuplicateResourceError, "the resource you are trying to create already exists", underlyingError)
}

// NewInvalidReferenceError creates a new InvalidReferenceError
func NewInvalidReferenceError(underlyingError error) *AppError {
	return NewAppError(InvalidReferenceError, "the referenced resource does not exist", underlyingError)
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// ErrorResponse represents the error payload returned to API clients.
type ErrorResponse struct {
	// `example` is a struct tag used by Swagger/OpenAPI documentation generators.
	Error   string `json:"error" example:"NOT_FOUND"`
	Message string `json:"message" example:"payroll not found"`
}

// ToResponse converts an AppError to an ErrorResponse suitable for API responses.
// Only the user-facing `Message` is included, never the underlying `Err`.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Code(), Message: e.Message}
}

// FromError attempts to find an *AppError in the error chain.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries an AppError of the given type.
func Is(err error, errType ErrorType) bool {
	appErr, ok := FromError(err)
	return ok && appErr.Type == errType
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	return Is(err, NotFoundError)
}
