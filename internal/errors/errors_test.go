package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with message",
			err:  NewAPIError(500, "/api/chat", "boom"),
			want: "API error [500] at /api/chat: boom",
		},
		{
			name: "without message",
			err:  &APIError{StatusCode: 502, Endpoint: "/api/chat"},
			want: "API error [502] at /api/chat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIErrorWithBody(t *testing.T) {
	err := NewAPIErrorWithBody(503, "/api/chat", "unavailable", `{"error":"x"}`)
	if err.Body != `{"error":"x"}` {
		t.Errorf("Body = %q", err.Body)
	}
	if err.StatusCode != 503 {
		t.Errorf("StatusCode = %d", err.StatusCode)
	}
}

func TestRateLimitErrorIsSentinel(t *testing.T) {
	err := NewRateLimitError("slow down")
	if !errors.Is(err, ErrRateLimited) {
		t.Error("RateLimitError should match ErrRateLimited")
	}

	wrapped := fmt.Errorf("send failed: %w", err)
	if !errors.Is(wrapped, ErrRateLimited) {
		t.Error("wrapped RateLimitError should match ErrRateLimited")
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("send message", "/api/chat", cause)

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "/api/chat") {
		t.Errorf("Error() should mention the endpoint: %q", err.Error())
	}
}

func TestStreamInterruptedError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewStreamInterruptedError("partial text", cause)

	if !errors.Is(err, ErrStreamInterrupted) {
		t.Error("should match ErrStreamInterrupted sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("should unwrap to read error")
	}
	if !strings.Contains(err.Error(), "12 chars") {
		t.Errorf("Error() should report preserved length: %q", err.Error())
	}
}

func TestRetriesExhaustedError(t *testing.T) {
	last := NewAPIError(503, "/api/chat", "unavailable")
	err := NewRetriesExhaustedError(3, last)

	if !strings.Contains(err.Error(), "3 attempts") {
		t.Errorf("Error() = %q", err.Error())
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Error("should unwrap to the last attempt's APIError")
	}
	if apiErr.StatusCode != 503 {
		t.Errorf("unwrapped StatusCode = %d", apiErr.StatusCode)
	}
}
