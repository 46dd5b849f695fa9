package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotReady indicates no backend is usable yet
	ErrNotReady = errors.New("git is not ready")

	// ErrUnsupportedByBackend indicates the active backend lacks the requested capability
	ErrUnsupportedByBackend = errors.New("operation not supported by backend")

	// ErrCloneFailed indicates the git client failed to clone a repository
	ErrCloneFailed = errors.New("failed to clone repository")

	// ErrConnectivity indicates the remote backend could not be reached
	ErrConnectivity = errors.New("failed to connect to OpenHands API")

	// ErrFeatureDisabled indicates the operation was turned off in configuration
	ErrFeatureDisabled = errors.New("feature disabled")

	// ErrInvalidURL indicates an invalid URL was provided
	ErrInvalidURL = errors.New("invalid URL")

	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")
)

// APIError represents a non-success response from the remote backend
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error (%d): %s", e.StatusCode, e.Body)
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, body string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       body,
	}
}

// CloneError represents a failed shallow clone. It always matches ErrCloneFailed.
type CloneError struct {
	URL     string
	Message string
	Err     error
}

func (e *CloneError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("clone %s: %s", e.URL, e.Message)
	}
	return fmt.Sprintf("clone %s: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

func (e *CloneError) Is(target error) bool {
	return target == ErrCloneFailed
}

// NewCloneError creates a new CloneError
func NewCloneError(url, message string, err error) *CloneError {
	return &CloneError{
		URL:     url,
		Message: message,
		Err:     err,
	}
}

// BackendError represents a rejected operation on a specific backend
type BackendError struct {
	Backend BackendKind
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new BackendError
func NewBackendError(backend BackendKind, op string, err error) *BackendError {
	return &BackendError{
		Backend: backend,
		Op:      op,
		Err:     err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
