package engine

import (
	"errors"
	"fmt"
)

// ErrorType classifies recoverable engine failures.
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "VALIDATION"
	ErrorTypeDuplicate   ErrorType = "DUPLICATE"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"
	ErrorTypePersistence ErrorType = "PERSISTENCE"
)

// AppError is the structured failure result every engine operation
// reports. All kinds are recoverable; the engine never retries and
// never panics on them.
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewDuplicateError reports a blocking duplicate; the matched record id
// and similarity score travel in the details.
func NewDuplicateError(score float64, matchID string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("similar thought already exists (match: %.0f%%)", score*100),
		Details: map[string]interface{}{
			"similarity": score,
			"match_id":   matchID,
		},
	}
}

func NewNotFoundError(id string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("thought %s not found", id),
	}
}

func NewPersistenceError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypePersistence, Message: message, Cause: cause}
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

func IsValidation(err error) bool  { return isType(err, ErrorTypeValidation) }
func IsDuplicate(err error) bool   { return isType(err, ErrorTypeDuplicate) }
func IsNotFound(err error) bool    { return isType(err, ErrorTypeNotFound) }
func IsPersistence(err error) bool { return isType(err, ErrorTypePersistence) }
