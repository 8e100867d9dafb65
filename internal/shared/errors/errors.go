// Package errors provides application-level error types and utilities.
// Every error that should reach an API caller is an *AppError carrying its HTTP status.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	appErr := &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
	}
	if len(details) > 0 {
		appErr.Details = details[0]
	}
	return appErr
}

// NewValidationError creates a new validation error (400)
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewBadRequestError creates a new bad request error (400)
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewUnauthorizedError creates a new unauthorized error (401)
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error (403)
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewNotFoundError creates a new not found error (404)
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error (409)
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInternalError creates a new internal error (500)
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsDuplicateError checks if the error is a database duplicate key error.
// Covers MySQL ("Duplicate entry") and SQLite ("UNIQUE constraint failed").
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key")
}
