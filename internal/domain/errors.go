package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	AccountID  string    `json:"account_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		"VALIDATION_ERROR",
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		"NOT_FOUND",
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		"UNAUTHORIZED",
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return NewAppError(
		"CONFLICT",
		message,
		http.StatusConflict,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		"INTERNAL_ERROR",
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		"DATABASE_ERROR",
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// Error codes for different categories of errors
const (
	// Auth / identity
	ErrCodeTokenMissing      = "TOKEN_MISSING"
	ErrCodeTokenInvalid      = "TOKEN_INVALID"
	ErrCodeAdminTokenInvalid = "ADMIN_TOKEN_INVALID"
	ErrCodeAccountNotFound   = "ACCOUNT_NOT_FOUND"

	// Client errors
	ErrCodeInvalidProbability = "INVALID_PROBABILITY"
	ErrCodeBadNickname        = "BAD_NICKNAME"
	ErrCodeDuplicateNickname  = "DUPLICATE_NICKNAME"
	ErrCodeSelfReferral       = "SELF_REFERRAL"
	ErrCodeNoRef              = "NO_REF"
	ErrCodeReferrerNotFound   = "REF_NOT_FOUND"
	ErrCodeInvalidFormat      = "INVALID_FORMAT"
	ErrCodeRequiredField      = "REQUIRED_FIELD"
	ErrCodeInvalidRange       = "INVALID_RANGE"

	// Resource errors (expected to trigger a compensating client action)
	ErrCodeNoCoins           = "NO_COINS"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"

	// Idempotency errors (the effect already happened, or never can)
	ErrCodeDuplicateReward = "DUPLICATE_REWARD"
	ErrCodeRewardCooldown  = "REWARD_COOLDOWN"
	ErrCodeAlreadyClaimed  = "ALREADY_CLAIMED"
	ErrCodeAlreadyClosed   = "ALREADY_CLOSED"

	// Infrastructure errors
	ErrCodeDatabaseConnection = "DATABASE_CONNECTION_ERROR"
	ErrCodeDatabaseQuery      = "DATABASE_QUERY_ERROR"
	ErrCodePointsService      = "POINTS_SERVICE_ERROR"
	ErrCodeNoExternalIdentity = "NO_EXTERNAL_IDENTITY"
)
