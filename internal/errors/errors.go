// Package errors provides custom error types for the streamchat client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrMessageTooLong    = errors.New("message exceeds the maximum length")
	ErrSendInFlight      = errors.New("a send is already in flight")
	ErrRateLimited       = errors.New("rate limited")
	ErrStreamInterrupted = errors.New("response stream interrupted")
)

// APIError represents a non-success response from the backend.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error [%d] at %s", e.StatusCode, e.Endpoint)
}

// Is allows comparison with another APIError
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NewAPIErrorWithBody creates a new APIError carrying the raw response body
// for diagnostics.
func NewAPIErrorWithBody(statusCode int, endpoint, message, body string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// RateLimitError represents a rate-limited request. It is always terminal:
// the client surfaces it immediately and never retries.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return "rate limited: too many requests"
	}
	return fmt.Sprintf("rate limited: %s", e.Message)
}

// Is allows comparison with the ErrRateLimited sentinel
func (e *RateLimitError) Is(target error) bool {
	if target == ErrRateLimited {
		return true
	}
	_, ok := target.(*RateLimitError)
	return ok
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(message string) *RateLimitError {
	return &RateLimitError{Message: message}
}

// NetworkError represents a transport-level failure: the request never
// produced a response. Always classified as retryable.
type NetworkError struct {
	Operation string
	Endpoint  string
	Err       error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error during %s at %s: %v", e.Operation, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is allows comparison with another NetworkError
func (e *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(operation, endpoint string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Endpoint: endpoint, Err: err}
}

// StreamInterruptedError represents a mid-stream failure after content was
// already received. The partial content is preserved, never discarded, and
// the operation is not retried: text already shown to the user must not be
// replaced.
type StreamInterruptedError struct {
	Partial string
	Err     error
}

func (e *StreamInterruptedError) Error() string {
	if e.Partial != "" {
		return fmt.Sprintf("stream interrupted after %d chars: %v", len(e.Partial), e.Err)
	}
	return fmt.Sprintf("stream interrupted: %v", e.Err)
}

// Unwrap returns the underlying read error
func (e *StreamInterruptedError) Unwrap() error {
	return e.Err
}

// Is allows comparison with the ErrStreamInterrupted sentinel
func (e *StreamInterruptedError) Is(target error) bool {
	if target == ErrStreamInterrupted {
		return true
	}
	_, ok := target.(*StreamInterruptedError)
	return ok
}

// NewStreamInterruptedError creates a new StreamInterruptedError
func NewStreamInterruptedError(partial string, err error) *StreamInterruptedError {
	return &StreamInterruptedError{Partial: partial, Err: err}
}

// RetriesExhaustedError is returned when every attempt of a logical send
// failed with a retryable condition.
type RetriesExhaustedError struct {
	Attempts int
	Last     error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Last)
}

// Unwrap returns the last attempt's error
func (e *RetriesExhaustedError) Unwrap() error {
	return e.Last
}

// Is allows comparison with another RetriesExhaustedError
func (e *RetriesExhaustedError) Is(target error) bool {
	_, ok := target.(*RetriesExhaustedError)
	return ok
}

// NewRetriesExhaustedError creates a new RetriesExhaustedError
func NewRetriesExhaustedError(attempts int, last error) *RetriesExhaustedError {
	return &RetriesExhaustedError{Attempts: attempts, Last: last}
}

// ParseError represents a response body that could not be interpreted.
// A malformed error body does not change retry classification; callers fall
// back to a status-based message.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}
