// Package models defines the data types shared across the streamchat client.
package models

// Backend endpoint paths, relative to the configured base URL.
const (
	PathChat   = "/api/chat"
	PathClear  = "/api/chat/clear"
	PathHealth = "/api/health"
)

// SSE wire format constants.
//
// The backend streams text frames separated by a blank line. Frames that
// carry content start with DataPrefix followed by the raw payload text;
// frames without the prefix are control lines and are ignored.
const (
	// FrameDelimiter separates frames on the wire.
	FrameDelimiter = "\n\n"

	// DataPrefix marks a content frame.
	DataPrefix = "data: "
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxMessageLength is the maximum number of characters accepted in a single
// outbound message. Enforced client-side before any network activity.
const MaxMessageLength = 4000

// StatusRateLimited is the status the backend returns when the caller has
// exceeded its request budget. It is always terminal: the client never
// retries it.
const StatusRateLimited = 429

// DefaultRetryableStatuses are the response statuses treated as transient
// server failures: the five standard server-error statuses plus the two
// gateway statuses commonly emitted by fronting proxies.
func DefaultRetryableStatuses() []int {
	return []int{500, 501, 502, 503, 504, 522, 524}
}
