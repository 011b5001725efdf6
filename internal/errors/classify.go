package errors

import (
	"errors"
)

// IsRateLimitError reports whether err represents a rate-limited request.
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsInterruptedError reports whether err is a mid-stream interruption with
// preserved partial content.
func IsInterruptedError(err error) bool {
	return errors.Is(err, ErrStreamInterrupted)
}

// IsValidationError reports whether err was rejected before any network
// activity.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyMessage) || errors.Is(err, ErrMessageTooLong)
}

// GetHTTPStatus extracts the HTTP status code from an error chain, or 0 if
// none is present.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Partial extracts preserved partial content from an interrupted stream, or
// "" if the error carries none.
func Partial(err error) string {
	var interrupted *StreamInterruptedError
	if errors.As(err, &interrupted) {
		return interrupted.Partial
	}
	return ""
}

// IsRetryable reports whether err should trigger another attempt, given the
// configured set of retryable statuses. Rate limiting is always terminal,
// transport failures are always retryable, and interrupted streams with
// partial content are never retried.
func IsRetryable(err error, retryableStatuses []int) bool {
	if err == nil {
		return false
	}
	if IsRateLimitError(err) || IsInterruptedError(err) || IsValidationError(err) {
		return false
	}
	if IsNetworkError(err) {
		return true
	}
	if status := GetHTTPStatus(err); status > 0 {
		for _, s := range retryableStatuses {
			if status == s {
				return true
			}
		}
	}
	return false
}

// UserMessage renders err as a single human-readable string suitable for
// display, distinguishing the conditions the UI treats differently.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyMessage):
		return "Please enter a message."
	case errors.Is(err, ErrMessageTooLong):
		return "Message is too long."
	case IsRateLimitError(err):
		return "Rate limit reached. Please wait a moment before sending again."
	case IsInterruptedError(err):
		return "Connection interrupted. The partial response has been kept."
	default:
		var exhausted *RetriesExhaustedError
		if errors.As(err, &exhausted) {
			return "The server may be temporarily unavailable. Please try again later."
		}
		return "Something went wrong. Please try again."
	}
}
