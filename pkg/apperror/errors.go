package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Richiesta non valida"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Operazione non consentita"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Errore interno del server"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates an error for missing or malformed inbound fields.
// It is local and never reflects an upstream response.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewPolicyBlockedError creates the error returned when a fiscal id is on the
// deny-list. The upstream is never contacted for these.
func NewPolicyBlockedError(fiscalID string) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Message: "Account disabilitato",
		Detail:  fiscalID,
	}
}

// NewUpstreamError creates an error relaying an upstream failure. status is
// the upstream HTTP status when known, else 500. detail carries the raw
// upstream error body for diagnostics.
func NewUpstreamError(status int, message string, detail interface{}) *AppError {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return &AppError{
		Code:    status,
		Message: message,
		Detail:  detail,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
