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

// ---- Dispatch & Delivery (WH) ----

// ErrTopicNotFound signals a dispatch against an unregistered topic name.
func ErrTopicNotFound(topic string) *AppError {
	return New("WH_001", fmt.Sprintf("Topic '%s' is not registered", topic), http.StatusNotFound)
}

// ErrInvalidPayloadType signals a handler that returned something other than
// nil, a string, or a map.
func ErrInvalidPayloadType() *AppError {
	return New("WH_002", "Handler payload must be a string, a map, or nil", http.StatusUnprocessableEntity)
}

// Validation returns a WH_003 precondition failure.
func Validation(message string) *AppError {
	return New("WH_003", message, http.StatusBadRequest)
}

func ErrWebhookNotFound() *AppError {
	return New("WH_004", "Webhook not found", http.StatusNotFound)
}

func ErrWebhookInactive() *AppError {
	return New("WH_005", "Webhook is not active", http.StatusConflict)
}

func ErrEventNotFound() *AppError {
	return New("WH_006", "Event not found", http.StatusNotFound)
}

func ErrEventNotRetryable() *AppError {
	return New("WH_007", "Only failed events can be retried", http.StatusConflict)
}

func ErrInvalidSecretLength() *AppError {
	return New("WH_008", "Secret length must be between 16 and 64", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Missing or invalid admin token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrQueueError(err error) *AppError {
	return Wrap("SYS_002", "Delivery queue error", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
