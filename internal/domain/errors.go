package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal         ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrUnauthenticated  ErrorCode = "UNAUTHENTICATED"
	ErrForbidden        ErrorCode = "FORBIDDEN"
	ErrConflict         ErrorCode = "CONFLICT"
	ErrStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	// Auth specific errors
	ErrInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrUsernameTaken      ErrorCode = "USERNAME_TAKEN"
	ErrInvalidUsername    ErrorCode = "INVALID_USERNAME"
	ErrWeakPassword       ErrorCode = "WEAK_PASSWORD"

	// Quiz specific errors
	ErrInvalidQuizStructure ErrorCode = "INVALID_QUIZ_STRUCTURE"
	ErrAIUnavailable        ErrorCode = "AI_UNAVAILABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

// Helper constructors for common errors

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewUnauthenticatedError(message string) *DomainError {
	if message == "" {
		message = "Authentication required"
	}
	return NewError(ErrUnauthenticated, message, nil)
}

func NewInvalidCredentialsError() *DomainError {
	return NewError(ErrInvalidCredentials, "Invalid username or password", nil)
}

func NewUsernameTakenError(username string) *DomainError {
	return NewError(ErrUsernameTaken, fmt.Sprintf("Username %q already exists", username), nil)
}

func NewInvalidUsernameError() *DomainError {
	return NewError(ErrInvalidUsername, "Username must be 3-20 characters, alphanumeric and underscore only", nil)
}

func NewWeakPasswordError() *DomainError {
	return NewError(ErrWeakPassword, "Password must be at least 8 characters with letters and numbers", nil)
}

func NewInvalidQuizStructureError(message string) *DomainError {
	return NewError(ErrInvalidQuizStructure, message, nil)
}

func NewStoreUnavailableError(cause error) *DomainError {
	return NewError(ErrStoreUnavailable, "Store operation failed", cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(ErrInternal, message, cause)
}
