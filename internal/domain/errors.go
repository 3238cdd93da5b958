package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates an item, parent or move target was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// InvalidTargetError indicates an operation that requires a folder was
	// given a file (create-under-file, move-into-file)
	InvalidTargetError struct {
		Message string
	}

	// CyclicMoveError indicates a folder was moved into itself or one of
	// its own descendants
	CyclicMoveError struct {
		Message string
	}

	// TransientError indicates a store I/O failure or timeout; the request
	// is safe to retry
	TransientError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string      { return e.Message }
func (e *ValidationError) Error() string    { return e.Message }
func (e *InvalidTargetError) Error() string { return e.Message }
func (e *CyclicMoveError) Error() string    { return e.Message }
func (e *TransientError) Error() string     { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int    { return http.StatusBadRequest }
func (e *InvalidTargetError) StatusCode() int { return http.StatusBadRequest }
func (e *CyclicMoveError) StatusCode() int    { return http.StatusBadRequest }
func (e *TransientError) StatusCode() int     { return http.StatusInternalServerError }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidTarget = errors.New("target is not a folder")
	ErrCyclicMove    = errors.New("cannot move a folder into itself or a descendant")
	ErrTransient     = errors.New("transient store failure")
)

// Is allows errors.Is() to match typed errors against their sentinel
func (e *NotFoundError) Is(target error) bool      { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool    { return target == ErrValidation }
func (e *InvalidTargetError) Is(target error) bool { return target == ErrInvalidTarget }
func (e *CyclicMoveError) Is(target error) bool    { return target == ErrCyclicMove }
func (e *TransientError) Is(target error) bool     { return target == ErrTransient }
