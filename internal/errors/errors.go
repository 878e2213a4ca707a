package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrCodeNotStarted           = "GAME_NOT_STARTED"
	ErrCodeFinished             = "GAME_FINISHED"
	ErrCodeInvalidState         = "INVALID_STATE"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// Sentinels for errors.Is comparisons. Matching is by Code only.
var (
	ErrNotFound             = &AppError{Code: ErrCodeNotFound}
	ErrValidation           = &AppError{Code: ErrCodeValidation}
	ErrInvalidConfiguration = &AppError{Code: ErrCodeInvalidConfiguration}
	ErrNotStarted           = &AppError{Code: ErrCodeNotStarted}
	ErrFinished             = &AppError{Code: ErrCodeFinished}
	ErrInvalidState         = &AppError{Code: ErrCodeInvalidState}
	ErrInternal             = &AppError{Code: ErrCodeInternal}
)

// AppError represents an application error with an error code
type AppError struct {
	Code    string // Error code (e.g., "VALIDATION_ERROR", "GAME_FINISHED")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of an *AppError, or "" for any other error.
func CodeOf(err error) string {
	for err != nil {
		if ae, ok := err.(*AppError); ok {
			return ae.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewInvalidConfigurationError creates a new INVALID_CONFIGURATION error
func NewInvalidConfigurationError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfiguration,
		Message: reason,
	}
}

// NewNotStartedError creates a new GAME_NOT_STARTED error for the named command
func NewNotStartedError(command string) *AppError {
	return &AppError{
		Code:    ErrCodeNotStarted,
		Message: fmt.Sprintf("%s requires a game in progress", command),
	}
}

// NewFinishedError creates a new GAME_FINISHED error for the named command
func NewFinishedError(command string) *AppError {
	return &AppError{
		Code:    ErrCodeFinished,
		Message: fmt.Sprintf("%s rejected: game already finished", command),
	}
}

// NewInvalidStateError creates a new INVALID_STATE error
func NewInvalidStateError(command string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidState,
		Message: fmt.Sprintf("%s rejected: %s", command, reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}
